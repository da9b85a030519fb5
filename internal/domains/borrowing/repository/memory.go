package repository

import (
	"context"
	"sync"
	"time"

	"library-backend/internal/domains/borrowing/model"
)

// memoryRepository keeps borrow records in insertion order; a test double
// that matches the read-your-writes behavior of the postgres store.
type memoryRepository struct {
	mu      sync.RWMutex
	records []model.BorrowRecord
	nextID  int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{nextID: 1}
}

func (r *memoryRepository) Insert(_ context.Context, record *model.BorrowRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = r.nextID
	r.nextID++
	r.records = append(r.records, *record)
	return nil
}

func (r *memoryRepository) ListByPatron(_ context.Context, patronID string) ([]model.BorrowRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.BorrowRecord, 0)
	for _, rec := range r.records {
		if rec.PatronID == patronID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memoryRepository) ListByPatronAndBook(_ context.Context, patronID string, bookID int64) ([]model.BorrowRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.BorrowRecord, 0)
	for _, rec := range r.records {
		if rec.PatronID == patronID && rec.BookID == bookID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memoryRepository) CountOutstanding(_ context.Context, patronID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for i := range r.records {
		if r.records[i].PatronID == patronID && r.records[i].Outstanding() {
			count++
		}
	}
	return count, nil
}

func (r *memoryRepository) FindOutstanding(_ context.Context, patronID string, bookID int64) (*model.BorrowRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.records {
		rec := r.records[i]
		if rec.PatronID == patronID && rec.BookID == bookID && rec.Outstanding() {
			return &rec, nil
		}
	}
	return nil, model.ErrRecordNotFound
}

func (r *memoryRepository) SetReturnDate(_ context.Context, recordID int64, returnedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == recordID {
			t := returnedAt
			r.records[i].ReturnDate = &t
			return nil
		}
	}
	return model.ErrRecordNotFound
}
