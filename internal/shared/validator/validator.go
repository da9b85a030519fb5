package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Format checks shared across domains. Each helper returns an error whose
// message is the exact failure text surfaced to patrons, so services can
// pass it straight into a result envelope.

const (
	MsgInvalidPatronID      = "Invalid patron ID. Must be exactly 6 digits."
	MsgISBNLength           = "ISBN must be exactly 13 digits."
	MsgISBNDigitsOnly       = "ISBN must be composed of digits only."
	MsgInvalidTransactionID = "Invalid transaction ID."
)

// ISBNLength is the required number of digits in an ISBN-13
const ISBNLength = 13

var (
	patronIDPattern      = regexp.MustCompile(`^[0-9]{6}$`)
	digitsOnlyPattern    = regexp.MustCompile(`^[0-9]+$`)
	transactionIDPattern = regexp.MustCompile(`^txn_`)
)

// ValidatePatronID checks that id is exactly 6 digits.
func ValidatePatronID(patronID string) error {
	return validation.Validate(patronID,
		validation.Required.Error(MsgInvalidPatronID),
		validation.Match(patronIDPattern).Error(MsgInvalidPatronID),
	)
}

// ValidateISBN checks length first, then the digits-only constraint, so a
// 13-character non-numeric string reports the digits message.
func ValidateISBN(isbn string) error {
	return validation.Validate(isbn,
		validation.Required.Error(MsgISBNLength),
		validation.RuneLength(ISBNLength, ISBNLength).Error(MsgISBNLength),
		validation.Match(digitsOnlyPattern).Error(MsgISBNDigitsOnly),
	)
}

// ValidateTransactionID checks the gateway transaction id shape ("txn_" prefix).
func ValidateTransactionID(transactionID string) error {
	return validation.Validate(transactionID,
		validation.Required.Error(MsgInvalidTransactionID),
		validation.Match(transactionIDPattern).Error(MsgInvalidTransactionID),
	)
}
