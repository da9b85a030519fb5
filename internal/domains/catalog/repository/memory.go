package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"library-backend/internal/domains/catalog/model"
	"library-backend/pkg/logger"
)

// memoryRepository is an in-process store used as a test double and for
// local development without PostgreSQL. Books are kept in insertion order.
type memoryRepository struct {
	mu     sync.RWMutex
	books  []model.Book
	nextID int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{nextID: 1}
}

func (r *memoryRepository) Insert(_ context.Context, book *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.books {
		if r.books[i].ISBN == book.ISBN {
			return model.ErrISBNAlreadyExists
		}
	}

	book.ID = r.nextID
	book.CreatedAt = time.Now()
	r.nextID++
	r.books = append(r.books, *book)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.books {
		if r.books[i].ID == id {
			b := r.books[i]
			return &b, nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (r *memoryRepository) GetByISBN(_ context.Context, isbn string) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.books {
		if r.books[i].ISBN == isbn {
			b := r.books[i]
			return &b, nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (r *memoryRepository) List(_ context.Context) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *memoryRepository) Search(ctx context.Context, field model.SearchField, query string) ([]model.Book, error) {
	if query == "" {
		return r.List(ctx)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Book, 0)
	needle := strings.ToLower(query)
	for _, b := range r.books {
		switch field {
		case model.SearchByISBN:
			if b.ISBN == query {
				out = append(out, b)
			}
		case model.SearchByTitle:
			if strings.Contains(strings.ToLower(b.Title), needle) {
				out = append(out, b)
			}
		case model.SearchByAuthor:
			if strings.Contains(strings.ToLower(b.Author), needle) {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

func (r *memoryRepository) UpdateAvailability(_ context.Context, id int64, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.books {
		if r.books[i].ID != id {
			continue
		}

		next := r.books[i].AvailableCopies + delta
		if next < 0 {
			// Data-integrity fault: clamp and report, never go negative
			logger.Warn("availability would go negative, clamping to 0", map[string]interface{}{
				"book_id": id,
				"delta":   delta,
			})
			next = 0
		}
		if next > r.books[i].TotalCopies {
			next = r.books[i].TotalCopies
		}
		r.books[i].AvailableCopies = next
		return nil
	}
	return model.ErrBookNotFound
}
