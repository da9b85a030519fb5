package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	borrowingmodel "library-backend/internal/domains/borrowing/model"
	catalogrepo "library-backend/internal/domains/catalog/repository"
	"library-backend/internal/domains/payment/gateway"
	"library-backend/internal/domains/payment/model"
	"library-backend/internal/shared"
	"library-backend/internal/shared/validator"
	"library-backend/pkg/logger"
)

type paymentService struct {
	gateway gateway.PaymentGateway
	books   catalogrepo.Repository
	fees    FeeCalculator
}

func NewService(gw gateway.PaymentGateway, books catalogrepo.Repository, fees FeeCalculator) Service {
	return &paymentService{gateway: gw, books: books, fees: fees}
}

// PayLateFees charges a patron's outstanding fee for one book. The
// gateway is never contacted for a malformed patron id or a zero fee, and
// gateway failures of any shape come back as domain results.
func (s *paymentService) PayLateFees(ctx context.Context, patronID string, bookID int64) (model.PaymentResult, error) {
	// Step 1: Patron id format - gateway must not be called on failure
	if err := validator.ValidatePatronID(patronID); err != nil {
		return model.Declined(shared.KindValidation, err.Error()), nil
	}

	// Step 2: Nothing owed means nothing to charge
	fee, err := s.fees.CalculateLateFee(ctx, patronID, bookID)
	if err != nil {
		return model.PaymentResult{}, err
	}
	if fee.FeeAmount.LessThanOrEqual(decimal.Zero) {
		return model.Declined(shared.KindConflict, model.MsgNoFeesToPay), nil
	}

	// Step 3: Description uses the book title
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return model.PaymentResult{}, err
	}
	description := fmt.Sprintf("Late fees for '%s'", book.Title)

	// Step 4: Charge through the gateway
	charge, err := s.gateway.ProcessPayment(ctx, patronID, fee.FeeAmount, description)
	if err != nil {
		// Transport failure: translate, never propagate raw
		logger.Error("payment gateway error", err)
		return model.Declined(shared.KindGateway, fmt.Sprintf("Payment processing error: %s", err.Error())), nil
	}

	if !charge.Approved {
		return model.Declined(shared.KindGateway, fmt.Sprintf("Payment failed: %s", charge.Message)), nil
	}

	logger.Info("late fee paid", map[string]interface{}{
		"patron_id":      patronID,
		"book_id":        bookID,
		"amount":         fee.FeeAmount.StringFixed(2),
		"transaction_id": charge.TransactionID,
	})

	return model.Approved(charge.Message, charge.TransactionID), nil
}

// RefundLateFeePayment validates the transaction id shape and the amount
// bounds (0 < amount <= max late fee) before delegating to the gateway.
func (s *paymentService) RefundLateFeePayment(ctx context.Context, transactionID string, amount decimal.Decimal) (shared.Result, error) {
	if err := validator.ValidateTransactionID(transactionID); err != nil {
		return shared.Fail(shared.KindValidation, err.Error()), nil
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.Fail(shared.KindValidation, model.MsgRefundNotPositive), nil
	}
	if amount.GreaterThan(borrowingmodel.MaxLateFee) {
		return shared.Fail(shared.KindValidation, model.MsgRefundExceedsMaxFee), nil
	}

	refund, err := s.gateway.RefundPayment(ctx, transactionID, amount)
	if err != nil {
		logger.Error("refund gateway error", err)
		return shared.Fail(shared.KindGateway, fmt.Sprintf("Refund processing error: %s", err.Error())), nil
	}

	if !refund.Approved {
		return shared.Fail(shared.KindGateway, refund.Message), nil
	}

	return shared.OK(refund.Message), nil
}
