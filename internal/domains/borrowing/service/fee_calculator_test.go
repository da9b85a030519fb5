package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/borrowing/model"
)

// fixedNow pins the calculator's clock for the duration of a test
func fixedNow(t *testing.T, now time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = prev })
}

func (f *fixture) seedRecord(t *testing.T, patronID string, bookID int64, borrowed, due time.Time, returned *time.Time) {
	t.Helper()
	rec := &model.BorrowRecord{
		PatronID:   patronID,
		BookID:     bookID,
		BorrowDate: borrowed,
		DueDate:    due,
		ReturnDate: returned,
	}
	require.NoError(t, f.records.Insert(context.Background(), rec))
}

func TestCalculateLateFeeTiers(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		daysOverdue int
		wantFee     string
	}{
		{1, "0.50"},
		{3, "1.50"},
		{7, "3.50"},
		{8, "4.50"},
		{10, "6.50"},
		{18, "14.50"},
		{19, "15.00"},
		{100, "15.00"},
	}

	for _, tt := range testCases {
		f := newFixture()
		book := f.seedBook(t, "1984", "9780451524935", 1)
		fixedNow(t, now)

		due := now.AddDate(0, 0, -tt.daysOverdue)
		f.seedRecord(t, testPatron, book.ID, due.AddDate(0, 0, -model.LoanPeriodDays), due, nil)

		fee, err := f.svc.CalculateLateFee(context.Background(), testPatron, book.ID)
		require.NoError(t, err)

		assert.Equal(t, tt.wantFee, fee.FeeAmount.StringFixed(2), "%d days overdue", tt.daysOverdue)
		assert.Equal(t, tt.daysOverdue, fee.DaysOverdue)
		assert.Equal(t, model.FeeStatusCalculated, fee.Status)
	}
}

func TestCalculateLateFeeNotDueYet(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		due  time.Time
	}{
		{"due tomorrow", now.AddDate(0, 0, 1)},
		{"due next week", now.AddDate(0, 0, 7)},
		{"due exactly now", now},
		{"overdue less than a day", now.Add(-6 * time.Hour)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			book := f.seedBook(t, "1984", "9780451524935", 1)
			fixedNow(t, now)

			f.seedRecord(t, testPatron, book.ID, tt.due.AddDate(0, 0, -model.LoanPeriodDays), tt.due, nil)

			fee, err := f.svc.CalculateLateFee(context.Background(), testPatron, book.ID)
			require.NoError(t, err)

			assert.True(t, fee.FeeAmount.IsZero())
			assert.Equal(t, 0, fee.DaysOverdue)
			assert.Equal(t, model.FeeStatusNotDue, fee.Status)
		})
	}
}

func TestCalculateLateFeeNeverBorrowed(t *testing.T) {
	f := newFixture()
	book := f.seedBook(t, "1984", "9780451524935", 1)

	fee, err := f.svc.CalculateLateFee(context.Background(), testPatron, book.ID)
	require.NoError(t, err)

	assert.True(t, fee.FeeAmount.IsZero())
	assert.Equal(t, model.DaysOverdueNotBorrowed, fee.DaysOverdue)
	assert.Equal(t, model.FeeStatusNotIssued, fee.Status)
}

// With multiple records for the same pairing, the earliest borrow is the
// one billed, even when it has already been returned.
func TestCalculateLateFeeUsesEarliestRecord(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	f := newFixture()
	book := f.seedBook(t, "1984", "9780451524935", 1)
	fixedNow(t, now)

	// First borrow: 10 days overdue, already returned
	oldDue := now.AddDate(0, 0, -10)
	returned := now.AddDate(0, 0, -2)
	f.seedRecord(t, testPatron, book.ID, oldDue.AddDate(0, 0, -model.LoanPeriodDays), oldDue, &returned)

	// Second borrow: not due yet
	newDue := now.AddDate(0, 0, 5)
	f.seedRecord(t, testPatron, book.ID, newDue.AddDate(0, 0, -model.LoanPeriodDays), newDue, nil)

	fee, err := f.svc.CalculateLateFee(context.Background(), testPatron, book.ID)
	require.NoError(t, err)

	assert.Equal(t, "6.50", fee.FeeAmount.StringFixed(2))
	assert.Equal(t, 10, fee.DaysOverdue)
	assert.Equal(t, model.FeeStatusCalculated, fee.Status)
}

func TestTieredFeeMonotonicAndCapped(t *testing.T) {
	prev := decimal.Zero
	for days := 1; days <= 40; days++ {
		fee := tieredFee(days)
		assert.True(t, fee.GreaterThanOrEqual(prev), "fee decreased at %d days", days)
		assert.True(t, fee.LessThanOrEqual(model.MaxLateFee), "cap exceeded at %d days", days)
		prev = fee
	}
	assert.True(t, tieredFee(40).Equal(model.MaxLateFee))
}
