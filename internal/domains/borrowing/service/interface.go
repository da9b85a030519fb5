package service

import (
	"context"

	"library-backend/internal/domains/borrowing/model"
	"library-backend/internal/shared"
)

// Service exposes the borrow/return engine, the late-fee calculator and
// the patron status reporter. Business failures travel inside the Result
// envelope; a non-nil error means the store failed.
type Service interface {
	BorrowBook(ctx context.Context, patronID string, bookID int64) (shared.Result, error)
	ReturnBook(ctx context.Context, patronID string, bookID int64) (shared.Result, error)
	CalculateLateFee(ctx context.Context, patronID string, bookID int64) (model.FeeResult, error)
	GetPatronStatusReport(ctx context.Context, patronID string) (*model.PatronStatusReport, error)
}
