package model

import "errors"

var (
	ErrBookNotFound      = errors.New("Book does not exist.")
	ErrISBNAlreadyExists = errors.New("A book with this ISBN already exists.")
)
