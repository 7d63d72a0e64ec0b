package errors

import "errors"

var (
	ErrNotFound = errors.New("option category not found")

	ErrInvalidID = errors.New("invalid option category ID format")
)
