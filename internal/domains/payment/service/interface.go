package service

import (
	"context"

	"github.com/shopspring/decimal"

	borrowingmodel "library-backend/internal/domains/borrowing/model"
	"library-backend/internal/domains/payment/model"
	"library-backend/internal/shared"
)

// Service validates payment inputs and delegates to the gateway,
// translating every gateway outcome into a domain result.
type Service interface {
	PayLateFees(ctx context.Context, patronID string, bookID int64) (model.PaymentResult, error)
	RefundLateFeePayment(ctx context.Context, transactionID string, amount decimal.Decimal) (shared.Result, error)
}

// FeeCalculator is the slice of the borrowing service the payment
// processor needs.
type FeeCalculator interface {
	CalculateLateFee(ctx context.Context, patronID string, bookID int64) (borrowingmodel.FeeResult, error)
}
