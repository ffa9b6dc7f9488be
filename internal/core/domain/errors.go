package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup of an absent entity. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ValidationError reports a malformed or incomplete request. Handlers map
// it to 400 and return Reason to the caller verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
