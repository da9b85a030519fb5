package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/borrowing/model"
)

func TestPatronStatusInvalidPatronID(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetPatronStatusReport(context.Background(), "12ab")
	assert.EqualError(t, err, "Invalid patron ID. Must be exactly 6 digits.")
}

func TestPatronStatusEmptyHistory(t *testing.T) {
	f := newFixture()

	report, err := f.svc.GetPatronStatusReport(context.Background(), testPatron)
	require.NoError(t, err)

	assert.Equal(t, testPatron, report.PatronID)
	assert.NotNil(t, report.OutstandingBooks)
	assert.Empty(t, report.OutstandingBooks)
	assert.NotNil(t, report.Records)
	assert.Empty(t, report.Records)
	assert.Equal(t, 0, report.NumOutstanding)
	assert.True(t, report.LateFee.IsZero())
}

func TestPatronStatusTracksBorrowsAndReturns(t *testing.T) {
	f := newFixture()
	first := f.seedBook(t, "1984", "9780451524935", 2)
	second := f.seedBook(t, "Animal Farm", "9780451526342", 2)

	res, err := f.svc.BorrowBook(context.Background(), testPatron, first.ID)
	require.NoError(t, err)
	require.True(t, res.Success)

	res, err = f.svc.BorrowBook(context.Background(), testPatron, second.ID)
	require.NoError(t, err)
	require.True(t, res.Success)

	report, err := f.svc.GetPatronStatusReport(context.Background(), testPatron)
	require.NoError(t, err)

	require.Len(t, report.Records, 2)
	assert.Equal(t, "1984", report.Records[0].Title)
	assert.Equal(t, "Animal Farm", report.Records[1].Title)
	assert.Equal(t, model.ReturnDateOutstanding, report.Records[0].ReturnDate)
	assert.Equal(t, 2, report.NumOutstanding)

	res, err = f.svc.ReturnBook(context.Background(), testPatron, first.ID)
	require.NoError(t, err)
	require.True(t, res.Success)

	report, err = f.svc.GetPatronStatusReport(context.Background(), testPatron)
	require.NoError(t, err)

	// History keeps the returned borrow, outstanding drops it
	require.Len(t, report.Records, 2)
	assert.Equal(t, time.Now().Format(model.DateLayout), report.Records[0].ReturnDate)
	require.Len(t, report.OutstandingBooks, 1)
	assert.Equal(t, "Animal Farm", report.OutstandingBooks[0].Title)
	assert.Equal(t, 1, report.NumOutstanding)
	assert.Equal(t, "Test Author", report.OutstandingBooks[0].Author)
}

func TestPatronStatusSumsLateFees(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	f := newFixture()
	first := f.seedBook(t, "1984", "9780451524935", 1)
	second := f.seedBook(t, "Animal Farm", "9780451526342", 1)
	third := f.seedBook(t, "The Great Gatsby", "9780743273565", 1)
	fixedNow(t, now)

	// 3 days overdue: 1.50
	due := now.AddDate(0, 0, -3)
	f.seedRecord(t, testPatron, first.ID, due.AddDate(0, 0, -model.LoanPeriodDays), due, nil)

	// 10 days overdue: 6.50
	due = now.AddDate(0, 0, -10)
	f.seedRecord(t, testPatron, second.ID, due.AddDate(0, 0, -model.LoanPeriodDays), due, nil)

	// Overdue but already returned: no longer outstanding, not summed
	due = now.AddDate(0, 0, -20)
	returned := now.AddDate(0, 0, -1)
	f.seedRecord(t, testPatron, third.ID, due.AddDate(0, 0, -model.LoanPeriodDays), due, &returned)

	report, err := f.svc.GetPatronStatusReport(context.Background(), testPatron)
	require.NoError(t, err)

	assert.Len(t, report.Records, 3)
	assert.Equal(t, 2, report.NumOutstanding)
	assert.Equal(t, "8.00", report.LateFee.StringFixed(2))
}

func TestPatronStatusIsolatedPerPatron(t *testing.T) {
	f := newFixture()
	book := f.seedBook(t, "1984", "9780451524935", 2)

	res, err := f.svc.BorrowBook(context.Background(), "111111", book.ID)
	require.NoError(t, err)
	require.True(t, res.Success)

	report, err := f.svc.GetPatronStatusReport(context.Background(), "222222")
	require.NoError(t, err)

	assert.Empty(t, report.Records)
	assert.Equal(t, 0, report.NumOutstanding)
}
