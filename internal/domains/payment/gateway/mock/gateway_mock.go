package mock

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"library-backend/internal/domains/payment/gateway"
)

// Gateway is a controllable test double for the payment gateway. Defaults
// approve every charge; set the Charge*/Refund* fields to script declines
// or transport failures. Call counters let tests assert the gateway was
// (not) reached.
type Gateway struct {
	ChargeResult *gateway.ChargeResult
	ChargeErr    error
	RefundResult *gateway.RefundResult
	RefundErr    error

	ChargeCalls int
	RefundCalls int

	LastPatronID      string
	LastAmount        decimal.Decimal
	LastDescription   string
	LastTransactionID string
}

func NewGateway() *Gateway {
	return &Gateway{}
}

func (g *Gateway) ProcessPayment(
	_ context.Context,
	patronID string,
	amount decimal.Decimal,
	description string,
) (*gateway.ChargeResult, error) {
	g.ChargeCalls++
	g.LastPatronID = patronID
	g.LastAmount = amount
	g.LastDescription = description

	if g.ChargeErr != nil {
		return nil, g.ChargeErr
	}
	if g.ChargeResult != nil {
		return g.ChargeResult, nil
	}

	return &gateway.ChargeResult{
		Approved:      true,
		TransactionID: fmt.Sprintf("txn_%s_%d", patronID, g.ChargeCalls),
		Message:       fmt.Sprintf("Payment of $%s processed successfully", amount.StringFixed(2)),
	}, nil
}

func (g *Gateway) RefundPayment(
	_ context.Context,
	transactionID string,
	amount decimal.Decimal,
) (*gateway.RefundResult, error) {
	g.RefundCalls++
	g.LastTransactionID = transactionID
	g.LastAmount = amount

	if g.RefundErr != nil {
		return nil, g.RefundErr
	}
	if g.RefundResult != nil {
		return g.RefundResult, nil
	}

	return &gateway.RefundResult{
		Approved: true,
		Message:  fmt.Sprintf("Refund of $%s processed successfully. Refund ID: refund_%s", amount.StringFixed(2), transactionID),
	}, nil
}
