package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/borrowing/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const recordColumns = `id, patron_id, book_id, borrow_date, due_date, return_date`

func (r *postgresRepository) Insert(ctx context.Context, record *model.BorrowRecord) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO borrow_records (patron_id, book_id, borrow_date, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, record.PatronID, record.BookID, record.BorrowDate, record.DueDate,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("insert borrow record failed: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListByPatron(ctx context.Context, patronID string) ([]model.BorrowRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM borrow_records WHERE patron_id = $1 ORDER BY id`, recordColumns)

	rows, err := r.pool.Query(ctx, query, patronID)
	if err != nil {
		return nil, fmt.Errorf("list borrow records failed: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *postgresRepository) ListByPatronAndBook(ctx context.Context, patronID string, bookID int64) ([]model.BorrowRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM borrow_records WHERE patron_id = $1 AND book_id = $2 ORDER BY id`, recordColumns)

	rows, err := r.pool.Query(ctx, query, patronID, bookID)
	if err != nil {
		return nil, fmt.Errorf("list borrow records failed: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *postgresRepository) CountOutstanding(ctx context.Context, patronID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM borrow_records
		WHERE patron_id = $1 AND return_date IS NULL
	`, patronID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count outstanding failed: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) FindOutstanding(ctx context.Context, patronID string, bookID int64) (*model.BorrowRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM borrow_records
		WHERE patron_id = $1 AND book_id = $2 AND return_date IS NULL
		ORDER BY id
		LIMIT 1
	`, recordColumns)

	var rec model.BorrowRecord
	err := r.pool.QueryRow(ctx, query, patronID, bookID).Scan(
		&rec.ID, &rec.PatronID, &rec.BookID, &rec.BorrowDate, &rec.DueDate, &rec.ReturnDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find outstanding record failed: %w", err)
	}
	return &rec, nil
}

func (r *postgresRepository) SetReturnDate(ctx context.Context, recordID int64, returnedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE borrow_records SET return_date = $2 WHERE id = $1
	`, recordID, returnedAt)
	if err != nil {
		return fmt.Errorf("set return date failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecordNotFound
	}
	return nil
}

func (r *postgresRepository) collect(rows pgx.Rows) ([]model.BorrowRecord, error) {
	records := make([]model.BorrowRecord, 0)
	for rows.Next() {
		var rec model.BorrowRecord
		if err := rows.Scan(&rec.ID, &rec.PatronID, &rec.BookID, &rec.BorrowDate, &rec.DueDate, &rec.ReturnDate); err != nil {
			return nil, fmt.Errorf("scan borrow record failed: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return records, nil
}
