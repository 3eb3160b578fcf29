// Package common holds errors shared across repositories, middleware, and
// handlers so that HTTP mapping can rely on errors.Is/As.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers missing rows, malformed ids, and rows owned by
	// another user. Callers must not be able to tell these apart.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when the users unique constraint rejects
	// an insert.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for tokens with bad signatures, malformed
	// payloads, or the wrong purpose.
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
