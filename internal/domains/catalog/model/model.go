package model

import "time"

// Field-length constraints enforced on catalog writes, counted in runes
const (
	MaxTitleLength  = 200
	MaxAuthorLength = 100
)

// Book represents a catalog entry. AvailableCopies is kept inside
// [0, TotalCopies]; a negative stored value is a data-integrity fault.
type Book struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Author          string    `json:"author" db:"author"`
	ISBN            string    `json:"isbn" db:"isbn"`
	TotalCopies     int       `json:"total_copies" db:"total_copies"`
	AvailableCopies int       `json:"available_copies" db:"available_copies"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// IsAvailable reports whether at least one copy can be borrowed
func (b *Book) IsAvailable() bool {
	return b.AvailableCopies > 0
}

// SearchField enumerates the supported search dimensions
type SearchField string

const (
	SearchByTitle  SearchField = "title"
	SearchByAuthor SearchField = "author"
	SearchByISBN   SearchField = "isbn"
)

func (f SearchField) Valid() bool {
	switch f {
	case SearchByTitle, SearchByAuthor, SearchByISBN:
		return true
	}
	return false
}
