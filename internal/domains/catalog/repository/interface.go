package repository

import (
	"context"

	"library-backend/internal/domains/catalog/model"
)

// Repository is the catalog side of the shared store. Implementations must
// provide read-your-writes consistency within a process.
type Repository interface {
	// Insert persists a new book and assigns its ID.
	// Returns model.ErrISBNAlreadyExists on a duplicate ISBN.
	Insert(ctx context.Context, book *model.Book) error

	// GetByID returns model.ErrBookNotFound when the id is unknown
	GetByID(ctx context.Context, id int64) (*model.Book, error)

	// GetByISBN returns model.ErrBookNotFound when no book carries the ISBN
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)

	// List returns every catalog entry in insertion order
	List(ctx context.Context) ([]model.Book, error)

	// Search filters by field. ISBN matches exactly; title/author match
	// case-insensitive substrings with whitespace taken literally.
	Search(ctx context.Context, field model.SearchField, query string) ([]model.Book, error)

	// UpdateAvailability moves available_copies by delta, clamped into
	// [0, total_copies]. Returns model.ErrBookNotFound for unknown ids.
	UpdateAvailability(ctx context.Context, id int64, delta int) error
}
