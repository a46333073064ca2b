package category

import "errors"

var (
	// ErrNotFound indicates the category does not exist.
	ErrNotFound = errors.New("category not found")

	// ErrNameTaken indicates another category already carries the name.
	ErrNameTaken = errors.New("category name already in use")

	// ErrInUse indicates requests still reference the category.
	ErrInUse = errors.New("category is referenced by existing requests")

	// ErrInvalidInput indicates a malformed category payload.
	ErrInvalidInput = errors.New("invalid category input")
)
