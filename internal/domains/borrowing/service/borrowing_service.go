package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"library-backend/internal/domains/borrowing/model"
	"library-backend/internal/domains/borrowing/repository"
	catalogmodel "library-backend/internal/domains/catalog/model"
	catalogrepo "library-backend/internal/domains/catalog/repository"
	"library-backend/internal/shared"
	"library-backend/internal/shared/validator"
	"library-backend/pkg/logger"
)

type borrowingService struct {
	books   catalogrepo.Repository
	records repository.Repository

	// mu serializes availability and record mutations so concurrent
	// requests through the web layer cannot lose updates.
	mu sync.Mutex
}

func NewService(books catalogrepo.Repository, records repository.Repository) Service {
	return &borrowingService{books: books, records: records}
}

// BorrowBook checks patron id format, book existence, copy availability
// and the per-patron limit, then decrements availability and opens a
// record due in 14 days. Availability is checked before the borrow limit,
// so an unavailable book wins when both conditions hold.
func (s *borrowingService) BorrowBook(ctx context.Context, patronID string, bookID int64) (shared.Result, error) {
	// Step 1: Patron id format
	if err := validator.ValidatePatronID(patronID); err != nil {
		return shared.Fail(shared.KindValidation, err.Error()), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Step 2: Resolve the book
	book, err := s.books.GetByID(ctx, bookID)
	if errors.Is(err, catalogmodel.ErrBookNotFound) {
		return shared.Fail(shared.KindNotFound, catalogmodel.ErrBookNotFound.Error()), nil
	}
	if err != nil {
		return shared.Result{}, err
	}

	// Step 3: Availability
	if book.AvailableCopies < 0 {
		// Store integrity fault: report it, refuse the borrow
		logger.Warn("negative available_copies observed", map[string]interface{}{
			"book_id":   book.ID,
			"available": book.AvailableCopies,
		})
		return shared.Fail(shared.KindConflict, model.MsgBookUnavailable), nil
	}
	if !book.IsAvailable() {
		return shared.Fail(shared.KindConflict, model.MsgBookUnavailable), nil
	}

	// Step 4: Per-patron borrow limit
	outstanding, err := s.records.CountOutstanding(ctx, patronID)
	if err != nil {
		return shared.Result{}, err
	}
	if outstanding >= model.MaxOutstandingLoans {
		return shared.Fail(shared.KindConflict, model.MsgBorrowLimit), nil
	}

	// Step 5: Take a copy and open the record
	now := time.Now()
	record := &model.BorrowRecord{
		PatronID:   patronID,
		BookID:     bookID,
		BorrowDate: now,
		DueDate:    now.AddDate(0, 0, model.LoanPeriodDays),
	}

	if err := s.books.UpdateAvailability(ctx, bookID, -1); err != nil {
		return shared.Result{}, err
	}
	if err := s.records.Insert(ctx, record); err != nil {
		// Give the copy back so it is not lost
		if rbErr := s.books.UpdateAvailability(ctx, bookID, +1); rbErr != nil {
			logger.Error("availability rollback failed", rbErr)
		}
		return shared.Result{}, err
	}

	logger.Info("book borrowed", map[string]interface{}{
		"patron_id": patronID,
		"book_id":   bookID,
		"record_id": record.ID,
	})

	return shared.OK(fmt.Sprintf(
		"'%s' successfully borrowed. Due on %s.",
		book.Title, record.DueDate.Format(model.DateLayout),
	)), nil
}

// ReturnBook closes the patron's outstanding record for the book and gives
// the copy back, never exceeding total_copies.
func (s *borrowingService) ReturnBook(ctx context.Context, patronID string, bookID int64) (shared.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Step 1: Resolve the book
	book, err := s.books.GetByID(ctx, bookID)
	if errors.Is(err, catalogmodel.ErrBookNotFound) {
		return shared.Fail(shared.KindNotFound, catalogmodel.ErrBookNotFound.Error()), nil
	}
	if err != nil {
		return shared.Result{}, err
	}

	// Step 2: The patron must actually be borrowing it
	record, err := s.records.FindOutstanding(ctx, patronID, bookID)
	if errors.Is(err, model.ErrRecordNotFound) {
		return shared.Fail(shared.KindConflict, model.MsgNotBorrowing), nil
	}
	if err != nil {
		return shared.Result{}, err
	}

	// Step 3: Close the record, give the copy back
	if err := s.records.SetReturnDate(ctx, record.ID, time.Now()); err != nil {
		return shared.Result{}, err
	}
	if err := s.books.UpdateAvailability(ctx, bookID, +1); err != nil {
		return shared.Result{}, err
	}

	logger.Info("book returned", map[string]interface{}{
		"patron_id": patronID,
		"book_id":   bookID,
		"record_id": record.ID,
	})

	return shared.OK(fmt.Sprintf("'%s' successfully returned.", book.Title)), nil
}
