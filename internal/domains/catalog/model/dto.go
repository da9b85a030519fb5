package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/shared/validator"
)

// AddBookRequest carries the inputs for adding a book to the catalog
type AddBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	TotalCopies int    `json:"total_copies"`
}

// Validate checks fields one at a time so the returned error message is
// exactly the text surfaced to the caller (no field-name prefixes).
func (r AddBookRequest) Validate() error {
	if err := validation.Validate(r.Title,
		validation.Required.Error("Title must be between 1 and 200 characters."),
		validation.RuneLength(1, MaxTitleLength).Error("Title must be between 1 and 200 characters."),
	); err != nil {
		return err
	}

	if err := validation.Validate(r.Author,
		validation.Required.Error("Author must be between 1 and 100 characters."),
		validation.RuneLength(1, MaxAuthorLength).Error("Author must be between 1 and 100 characters."),
	); err != nil {
		return err
	}

	if err := validator.ValidateISBN(r.ISBN); err != nil {
		return err
	}

	return validation.Validate(r.TotalCopies,
		validation.Required.Error("Total copies must be a positive integer."),
		validation.Min(1).Error("Total copies must be a positive integer."),
	)
}

// SearchBooksRequest carries catalog search parameters
type SearchBooksRequest struct {
	Query string      `form:"q"`
	Field SearchField `form:"field"`
}

func (r SearchBooksRequest) Validate() error {
	return validation.Validate(string(r.Field),
		validation.Required.Error("Search field must be one of: title, author, isbn."),
		validation.In("title", "author", "isbn").Error("Search field must be one of: title, author, isbn."),
	)
}
