package repository

import (
	"context"
	"time"

	"library-backend/internal/domains/borrowing/model"
)

// Repository is the borrow-record side of the shared store.
type Repository interface {
	// Insert persists a new record and assigns its ID
	Insert(ctx context.Context, record *model.BorrowRecord) error

	// ListByPatron returns every record for a patron in insertion order
	ListByPatron(ctx context.Context, patronID string) ([]model.BorrowRecord, error)

	// ListByPatronAndBook returns the patron's records for one book,
	// in insertion order
	ListByPatronAndBook(ctx context.Context, patronID string, bookID int64) ([]model.BorrowRecord, error)

	// CountOutstanding counts the patron's records with no return date
	CountOutstanding(ctx context.Context, patronID string) (int, error)

	// FindOutstanding returns the patron's open record for a book, or
	// model.ErrRecordNotFound when the patron is not borrowing it
	FindOutstanding(ctx context.Context, patronID string, bookID int64) (*model.BorrowRecord, error)

	// SetReturnDate closes a record
	SetReturnDate(ctx context.Context, recordID int64, returnedAt time.Time) error
}
