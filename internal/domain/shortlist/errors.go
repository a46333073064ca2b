package shortlist

import "errors"

var (
	// ErrNotFound indicates the request or shortlist entry does not exist.
	ErrNotFound = errors.New("shortlist entry not found")

	// ErrInvalidInput indicates a missing actor or request id.
	ErrInvalidInput = errors.New("invalid shortlist input")
)
