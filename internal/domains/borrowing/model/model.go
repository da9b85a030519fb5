package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Borrowing policy constants
const (
	LoanPeriodDays      = 14
	MaxOutstandingLoans = 5
	FeeTierDays         = 7
)

// Late-fee rates: the first 7 overdue days bill at the standard rate,
// every day past that at the extended rate, capped at MaxLateFee.
var (
	DailyRateStandard = decimal.NewFromFloat(0.50)
	DailyRateExtended = decimal.NewFromFloat(1.00)
	MaxLateFee        = decimal.NewFromFloat(15.00)
)

// DateLayout is the ISO date rendering used in patron-facing reports
const DateLayout = "2006-01-02"

// ReturnDateOutstanding marks a record with no return date in report views
const ReturnDateOutstanding = "Outstanding"

// BorrowRecord is one borrow of one book by one patron.
// Records are never deleted; returning sets ReturnDate.
type BorrowRecord struct {
	ID         int64      `json:"id" db:"id"`
	PatronID   string     `json:"patron_id" db:"patron_id"`
	BookID     int64      `json:"book_id" db:"book_id"`
	BorrowDate time.Time  `json:"borrow_date" db:"borrow_date"`
	DueDate    time.Time  `json:"due_date" db:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty" db:"return_date"`
}

// Outstanding reports whether the book has not been returned yet
func (r *BorrowRecord) Outstanding() bool {
	return r.ReturnDate == nil
}

// Fee statuses
const (
	FeeStatusNotIssued  = "Late fee not issued: patron has never borrowed this book"
	FeeStatusNotDue     = "This borrowed book is not due yet"
	FeeStatusCalculated = "Overdue fee calculation successful"
)

// DaysOverdueNotBorrowed is the sentinel for "no record exists"
const DaysOverdueNotBorrowed = -1

// FeeResult is the transient outcome of a late-fee calculation
type FeeResult struct {
	FeeAmount   decimal.Decimal `json:"fee_amount"`
	DaysOverdue int             `json:"days_overdue"`
	Status      string          `json:"status"`
}

// BorrowedBookView is a record enriched with book title/author and dates
// rendered for display.
type BorrowedBookView struct {
	RecordID   int64  `json:"record_id"`
	BookID     int64  `json:"book_id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	BorrowDate string `json:"borrow_date"`
	DueDate    string `json:"due_date"`
	ReturnDate string `json:"return_date"`
}

// PatronStatusReport aggregates a patron's outstanding books and history.
// Both sequences are in insertion order, newest borrow last.
type PatronStatusReport struct {
	PatronID         string             `json:"patron_id"`
	OutstandingBooks []BorrowedBookView `json:"outstanding_books"`
	Records          []BorrowedBookView `json:"records"`
	NumOutstanding   int                `json:"num_outstanding"`
	LateFee          decimal.Decimal    `json:"late_fee"`
}
