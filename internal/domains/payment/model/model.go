package model

import (
	"library-backend/internal/shared"
)

// PaymentResult extends the shared outcome envelope with the gateway
// transaction id. TransactionID is nil on every failure path.
type PaymentResult struct {
	shared.Result
	TransactionID *string `json:"transaction_id"`
}

func Approved(message, transactionID string) PaymentResult {
	return PaymentResult{
		Result:        shared.OK(message),
		TransactionID: &transactionID,
	}
}

func Declined(kind shared.ErrorKind, message string) PaymentResult {
	return PaymentResult{Result: shared.Fail(kind, message)}
}

// Patron-facing failure messages
const (
	MsgNoFeesToPay         = "No late fees to pay for this book."
	MsgRefundNotPositive   = "Refund amount must be greater than 0."
	MsgRefundExceedsMaxFee = "Refund amount exceeds maximum late fee."
)
