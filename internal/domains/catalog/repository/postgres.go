package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/catalog/model"
	"library-backend/pkg/database"
)

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = `id, title, author, isbn, total_copies, available_copies, created_at`

func (r *postgresRepository) Insert(ctx context.Context, book *model.Book) error {
	// Uniqueness check and insert run in one transaction so two concurrent
	// adds with the same ISBN cannot both pass the check. The created row
	// only escapes the transaction when it commits.
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (model.Book, error) {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)`, book.ISBN,
		).Scan(&exists)
		if err != nil {
			return model.Book{}, fmt.Errorf("isbn uniqueness check failed: %w", err)
		}
		if exists {
			return model.Book{}, model.ErrISBNAlreadyExists
		}

		b := *book
		err = tx.QueryRow(ctx, `
			INSERT INTO books (title, author, isbn, total_copies, available_copies)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`, b.Title, b.Author, b.ISBN, b.TotalCopies, b.AvailableCopies,
		).Scan(&b.ID, &b.CreatedAt)
		if err != nil {
			return model.Book{}, fmt.Errorf("insert book failed: %w", err)
		}

		return b, nil
	})
	if err != nil {
		return err
	}

	*book = created
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE id = $1`, bookColumns)
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE isbn = $1`, bookColumns)
	return r.scanOne(r.pool.QueryRow(ctx, query, isbn))
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books ORDER BY id`, bookColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books failed: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *postgresRepository) Search(ctx context.Context, field model.SearchField, query string) ([]model.Book, error) {
	if query == "" {
		return r.List(ctx)
	}

	var where string
	var arg interface{}
	switch field {
	case model.SearchByISBN:
		where = `isbn = $1`
		arg = query
	case model.SearchByTitle:
		where = `title ILIKE '%' || $1 || '%'`
		arg = escapeLike(query)
	case model.SearchByAuthor:
		where = `author ILIKE '%' || $1 || '%'`
		arg = escapeLike(query)
	default:
		return nil, fmt.Errorf("unsupported search field: %s", field)
	}

	sql := fmt.Sprintf(`SELECT %s FROM books WHERE %s ORDER BY id`, bookColumns, where)

	rows, err := r.pool.Query(ctx, sql, arg)
	if err != nil {
		return nil, fmt.Errorf("search books failed: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *postgresRepository) UpdateAvailability(ctx context.Context, id int64, delta int) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE books
		SET available_copies = LEAST(GREATEST(available_copies + $2, 0), total_copies)
		WHERE id = $1
	`, id, delta)
	if err != nil {
		return fmt.Errorf("update availability failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) scanOne(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan book failed: %w", err)
	}
	return &b, nil
}

func (r *postgresRepository) collect(rows pgx.Rows) ([]model.Book, error) {
	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan book failed: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return books, nil
}

// escapeLike keeps user input literal inside an ILIKE pattern
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if c == '%' || c == '_' || c == '\\' {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return string(out)
}
