package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/catalog/model"
	"library-backend/internal/domains/catalog/repository"
	"library-backend/internal/shared"
)

func newTestService() (Service, repository.Repository) {
	repo := repository.NewMemoryRepository()
	return NewService(repo, nil), repo
}

func addBook(t *testing.T, svc Service, title, author, isbn string, copies int) {
	t.Helper()
	res, err := svc.AddBook(context.Background(), model.AddBookRequest{
		Title:       title,
		Author:      author,
		ISBN:        isbn,
		TotalCopies: copies,
	})
	require.NoError(t, err)
	require.True(t, res.Success, res.Message)
}

func TestAddBookSuccess(t *testing.T) {
	svc, repo := newTestService()

	res, err := svc.AddBook(context.Background(), model.AddBookRequest{
		Title:       "The Great Gatsby",
		Author:      "F. Scott Fitzgerald",
		ISBN:        "9780743273565",
		TotalCopies: 3,
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "Book 'The Great Gatsby' successfully added to catalog.", res.Message)

	book, err := repo.GetByISBN(context.Background(), "9780743273565")
	require.NoError(t, err)
	assert.Equal(t, 3, book.TotalCopies)
	assert.Equal(t, 3, book.AvailableCopies)
	assert.True(t, book.IsAvailable())
}

func TestAddBookValidation(t *testing.T) {
	testCases := []struct {
		name    string
		req     model.AddBookRequest
		wantMsg string
	}{
		{
			"empty title",
			model.AddBookRequest{Title: "", Author: "A", ISBN: "9780743273565", TotalCopies: 1},
			"Title must be between 1 and 200 characters.",
		},
		{
			"title too long",
			model.AddBookRequest{Title: strings.Repeat("x", 201), Author: "A", ISBN: "9780743273565", TotalCopies: 1},
			"Title must be between 1 and 200 characters.",
		},
		{
			"empty author",
			model.AddBookRequest{Title: "T", Author: "", ISBN: "9780743273565", TotalCopies: 1},
			"Author must be between 1 and 100 characters.",
		},
		{
			"author too long",
			model.AddBookRequest{Title: "T", Author: strings.Repeat("x", 101), ISBN: "9780743273565", TotalCopies: 1},
			"Author must be between 1 and 100 characters.",
		},
		{
			"isbn too short",
			model.AddBookRequest{Title: "T", Author: "A", ISBN: "123", TotalCopies: 1},
			"ISBN must be exactly 13 digits.",
		},
		{
			"isbn non-numeric",
			model.AddBookRequest{Title: "T", Author: "A", ISBN: "97804515249AB", TotalCopies: 1},
			"ISBN must be composed of digits only.",
		},
		{
			"zero copies",
			model.AddBookRequest{Title: "T", Author: "A", ISBN: "9780743273565", TotalCopies: 0},
			"Total copies must be a positive integer.",
		},
		{
			"negative copies",
			model.AddBookRequest{Title: "T", Author: "A", ISBN: "9780743273565", TotalCopies: -2},
			"Total copies must be a positive integer.",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()

			res, err := svc.AddBook(context.Background(), tt.req)
			require.NoError(t, err)

			assert.False(t, res.Success)
			assert.Equal(t, shared.KindValidation, res.Kind)
			assert.Equal(t, tt.wantMsg, res.Message)

			// Nothing may be persisted on a validation failure
			books, err := repo.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, books)
		})
	}
}

// Length limits count characters, not bytes, so multi-byte titles and
// authors within the limits are accepted.
func TestAddBookMultibyteFieldsWithinLimits(t *testing.T) {
	svc, _ := newTestService()

	res, err := svc.AddBook(context.Background(), model.AddBookRequest{
		Title:       strings.Repeat("図", model.MaxTitleLength-50),
		Author:      strings.Repeat("夏", model.MaxAuthorLength),
		ISBN:        "9784101010014",
		TotalCopies: 1,
	})
	require.NoError(t, err)
	assert.True(t, res.Success, res.Message)

	res, err = svc.AddBook(context.Background(), model.AddBookRequest{
		Title:       strings.Repeat("図", model.MaxTitleLength+1),
		Author:      "夏目漱石",
		ISBN:        "9784101010021",
		TotalCopies: 1,
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Title must be between 1 and 200 characters.", res.Message)

	res, err = svc.AddBook(context.Background(), model.AddBookRequest{
		Title:       "こころ",
		Author:      strings.Repeat("夏", model.MaxAuthorLength+1),
		ISBN:        "9784101010021",
		TotalCopies: 1,
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Author must be between 1 and 100 characters.", res.Message)
}

func TestAddBookDuplicateISBN(t *testing.T) {
	svc, repo := newTestService()
	addBook(t, svc, "1984", "George Orwell", "9780451524935", 3)

	res, err := svc.AddBook(context.Background(), model.AddBookRequest{
		Title:       "Nineteen Eighty-Four",
		Author:      "George Orwell",
		ISBN:        "9780451524935",
		TotalCopies: 1,
	})
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, shared.KindConflict, res.Kind)
	assert.Equal(t, "A book with this ISBN already exists.", res.Message)

	books, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func seedCatalog(t *testing.T, svc Service) {
	t.Helper()
	addBook(t, svc, "1984", "George Orwell", "9780451524935", 3)
	addBook(t, svc, "Animal Farm", "George Orwell", "9780451526342", 2)
	addBook(t, svc, "The Great Gatsby", "F. Scott Fitzgerald", "9780743273565", 1)
}

func TestSearchBooksEmptyQueryReturnsAll(t *testing.T) {
	svc, _ := newTestService()
	seedCatalog(t, svc)

	books, err := svc.SearchBooks(context.Background(), model.SearchBooksRequest{
		Query: "",
		Field: model.SearchByTitle,
	})
	require.NoError(t, err)
	assert.Len(t, books, 3)
}

func TestSearchBooksByISBNExactMatch(t *testing.T) {
	svc, _ := newTestService()
	seedCatalog(t, svc)

	books, err := svc.SearchBooks(context.Background(), model.SearchBooksRequest{
		Query: "9780451524935",
		Field: model.SearchByISBN,
	})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "1984", books[0].Title)

	// A near-miss ISBN must not partial-match
	books, err = svc.SearchBooks(context.Background(), model.SearchBooksRequest{
		Query: "978045152493",
		Field: model.SearchByISBN,
	})
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestSearchBooksByAuthorPartialCaseInsensitive(t *testing.T) {
	svc, _ := newTestService()
	seedCatalog(t, svc)

	testCases := []struct {
		query     string
		wantCount int
	}{
		{"George Orwell", 2},
		{"george orwell", 2},
		{"george o", 2},
		{"Fitzgerald", 1},
		{"nobody", 0},
	}

	for _, tt := range testCases {
		books, err := svc.SearchBooks(context.Background(), model.SearchBooksRequest{
			Query: tt.query,
			Field: model.SearchByAuthor,
		})
		require.NoError(t, err)
		assert.Len(t, books, tt.wantCount, "query %q", tt.query)
	}
}

func TestSearchBooksByTitleWhitespaceIsLiteral(t *testing.T) {
	svc, _ := newTestService()
	seedCatalog(t, svc)

	books, err := svc.SearchBooks(context.Background(), model.SearchBooksRequest{
		Query: " farm",
		Field: model.SearchByTitle,
	})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Animal Farm", books[0].Title)

	books, err = svc.SearchBooks(context.Background(), model.SearchBooksRequest{
		Query: "  farm",
		Field: model.SearchByTitle,
	})
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestSearchBooksInvalidField(t *testing.T) {
	svc, _ := newTestService()
	seedCatalog(t, svc)

	_, err := svc.SearchBooks(context.Background(), model.SearchBooksRequest{
		Query: "1984",
		Field: "publisher",
	})
	assert.EqualError(t, err, "Search field must be one of: title, author, isbn.")
}

// fakeCache records reads and writes so the caching path can be asserted
// without Redis.
type fakeCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	f.gets++
	raw, ok := f.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = raw
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.store, k)
	}
	return nil
}

func (f *fakeCache) Ping(_ context.Context) error { return nil }

func TestGetAllBooksUsesCache(t *testing.T) {
	repo := repository.NewMemoryRepository()
	cache := newFakeCache()
	svc := NewService(repo, cache)

	addBook(t, svc, "1984", "George Orwell", "9780451524935", 3)

	first, err := svc.GetAllBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.GetAllBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ISBN, second[0].ISBN)
	assert.Equal(t, 1, cache.sets, "second read must come from cache")

	// Adding a book invalidates, so the next read repopulates
	addBook(t, svc, "Animal Farm", "George Orwell", "9780451526342", 2)

	third, err := svc.GetAllBooks(context.Background())
	require.NoError(t, err)
	assert.Len(t, third, 2)
	assert.Equal(t, 2, cache.sets)
}

func TestGetAllBooksWithoutCache(t *testing.T) {
	svc, _ := newTestService()
	seedCatalog(t, svc)

	books, err := svc.GetAllBooks(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 3)
}
