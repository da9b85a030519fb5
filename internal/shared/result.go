package shared

// ErrorKind classifies expected business failures so the HTTP layer
// can pick a status code without inspecting message text.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindGateway    ErrorKind = "gateway"
)

// Result is the outcome envelope for core business operations.
// Expected failures are carried as values, never as panics; infrastructure
// failures travel separately as plain errors.
type Result struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"-"`
}

func OK(message string) Result {
	return Result{Success: true, Message: message}
}

func Fail(kind ErrorKind, message string) Result {
	return Result{Success: false, Message: message, Kind: kind}
}
