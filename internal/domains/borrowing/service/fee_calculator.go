package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"library-backend/internal/domains/borrowing/model"
)

// timeNow is swapped out in tests that need a fixed evaluation time
var timeNow = time.Now

// CalculateLateFee derives the fee owed for one (patron, book) pairing at
// the current time. When the patron has borrowed the book more than once,
// the record with the earliest borrow date is the one billed, whether or
// not it has been returned.
func (s *borrowingService) CalculateLateFee(ctx context.Context, patronID string, bookID int64) (model.FeeResult, error) {
	records, err := s.records.ListByPatronAndBook(ctx, patronID, bookID)
	if err != nil {
		return model.FeeResult{}, err
	}

	if len(records) == 0 {
		return model.FeeResult{
			FeeAmount:   decimal.Zero,
			DaysOverdue: model.DaysOverdueNotBorrowed,
			Status:      model.FeeStatusNotIssued,
		}, nil
	}

	earliest := records[0]
	for _, rec := range records[1:] {
		if rec.BorrowDate.Before(earliest.BorrowDate) {
			earliest = rec
		}
	}

	daysOverdue := daysOverdue(earliest)
	if daysOverdue == 0 {
		return model.FeeResult{
			FeeAmount:   decimal.Zero,
			DaysOverdue: 0,
			Status:      model.FeeStatusNotDue,
		}, nil
	}

	return model.FeeResult{
		FeeAmount:   tieredFee(daysOverdue),
		DaysOverdue: daysOverdue,
		Status:      model.FeeStatusCalculated,
	}, nil
}

// daysOverdue counts whole days past the due date, never negative
func daysOverdue(rec model.BorrowRecord) int {
	overdue := timeNow().Sub(rec.DueDate)
	if overdue <= 0 {
		return 0
	}
	return int(overdue.Hours() / 24)
}

// tieredFee bills the first 7 overdue days at the standard rate and every
// further day at the extended rate, capped at the maximum late fee.
//
//	fee = 0.50 * min(d, 7) + 1.00 * max(0, d-7), capped at 15.00
func tieredFee(days int) decimal.Decimal {
	standardDays := days
	if standardDays > model.FeeTierDays {
		standardDays = model.FeeTierDays
	}
	extendedDays := days - model.FeeTierDays
	if extendedDays < 0 {
		extendedDays = 0
	}

	fee := model.DailyRateStandard.Mul(decimal.NewFromInt(int64(standardDays))).
		Add(model.DailyRateExtended.Mul(decimal.NewFromInt(int64(extendedDays))))

	if fee.GreaterThan(model.MaxLateFee) {
		return model.MaxLateFee
	}
	return fee
}
