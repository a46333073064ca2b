package request

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no request matches the given id.
	ErrNotFound = errors.New("request not found")
	// ErrInvalidInput indicates malformed input for request operations.
	ErrInvalidInput = errors.New("invalid request input")
)

// ValidationError reports a missing or malformed field. The field name is
// carried so boundaries can tell the caller exactly what to fix.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
