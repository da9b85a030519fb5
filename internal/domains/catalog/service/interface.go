package service

import (
	"context"

	"library-backend/internal/domains/catalog/model"
	"library-backend/internal/shared"
)

// Service exposes catalog business logic. Expected business failures come
// back inside the Result envelope; a non-nil error means the store failed.
type Service interface {
	AddBook(ctx context.Context, req model.AddBookRequest) (shared.Result, error)
	SearchBooks(ctx context.Context, req model.SearchBooksRequest) ([]model.Book, error)
	GetAllBooks(ctx context.Context) ([]model.Book, error)
}
