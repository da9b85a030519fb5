package gateway

import (
	"context"

	"github.com/shopspring/decimal"
)

// ChargeResult is the gateway's answer to a charge attempt. A decline is
// Approved=false with a message; transport failures travel as errors.
type ChargeResult struct {
	Approved      bool
	TransactionID string
	Message       string
}

// RefundResult is the gateway's answer to a refund attempt
type RefundResult struct {
	Approved bool
	Message  string
}

// PaymentGateway is the external payment collaborator. Implementations:
// the remote HTTP client and the in-package mock used in tests.
type PaymentGateway interface {
	// ProcessPayment charges a patron's account
	ProcessPayment(ctx context.Context, patronID string, amount decimal.Decimal, description string) (*ChargeResult, error)

	// RefundPayment returns money against an earlier transaction
	RefundPayment(ctx context.Context, transactionID string, amount decimal.Decimal) (*RefundResult, error)
}
