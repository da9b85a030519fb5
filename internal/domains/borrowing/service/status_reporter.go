package service

import (
	"context"

	"github.com/shopspring/decimal"

	"library-backend/internal/domains/borrowing/model"
	"library-backend/internal/shared/validator"
)

// GetPatronStatusReport aggregates a patron's outstanding books and full
// borrow history, newest borrow last, with the total late fee owed across
// outstanding books. A patron with no history gets an empty report.
func (s *borrowingService) GetPatronStatusReport(ctx context.Context, patronID string) (*model.PatronStatusReport, error) {
	if err := validator.ValidatePatronID(patronID); err != nil {
		return nil, err
	}

	records, err := s.records.ListByPatron(ctx, patronID)
	if err != nil {
		return nil, err
	}

	report := &model.PatronStatusReport{
		PatronID:         patronID,
		OutstandingBooks: make([]model.BorrowedBookView, 0),
		Records:          make([]model.BorrowedBookView, 0),
		LateFee:          decimal.Zero,
	}

	for _, rec := range records {
		view, err := s.enrich(ctx, rec)
		if err != nil {
			return nil, err
		}

		report.Records = append(report.Records, view)

		if rec.Outstanding() {
			report.OutstandingBooks = append(report.OutstandingBooks, view)

			fee, err := s.CalculateLateFee(ctx, patronID, rec.BookID)
			if err != nil {
				return nil, err
			}
			report.LateFee = report.LateFee.Add(fee.FeeAmount)
		}
	}

	report.NumOutstanding = len(report.OutstandingBooks)
	return report, nil
}

// enrich joins a record with its book's title and author and renders dates
// for display; a missing return date renders as the "Outstanding" marker.
func (s *borrowingService) enrich(ctx context.Context, rec model.BorrowRecord) (model.BorrowedBookView, error) {
	book, err := s.books.GetByID(ctx, rec.BookID)
	if err != nil {
		return model.BorrowedBookView{}, err
	}

	view := model.BorrowedBookView{
		RecordID:   rec.ID,
		BookID:     rec.BookID,
		Title:      book.Title,
		Author:     book.Author,
		BorrowDate: rec.BorrowDate.Format(model.DateLayout),
		DueDate:    rec.DueDate.Format(model.DateLayout),
		ReturnDate: model.ReturnDateOutstanding,
	}
	if rec.ReturnDate != nil {
		view.ReturnDate = rec.ReturnDate.Format(model.DateLayout)
	}
	return view, nil
}
