// Package validation contains the explicit input checks invoked at the
// repository and handler boundaries.
package validation

import (
	"regexp"
	"strings"

	"TASKHIVE_BACK-END/internal/common"
)

// Minimum lengths accepted for login credentials.
const (
	MinEmailLength    = 6
	MinPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email checks the login key: required, minimum length, basic shape.
func Email(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return common.NewValidationError("email", "is required")
	}
	if len(email) < MinEmailLength {
		return common.NewValidationError("email", "is too short")
	}
	if !emailPattern.MatchString(email) {
		return common.NewValidationError("email", "is not a valid email address")
	}
	return nil
}

// Password checks the plaintext password before it is hashed.
func Password(password string) error {
	if len(password) < MinPasswordLength {
		return common.NewValidationError("password", "must be at least 6 characters")
	}
	return nil
}

// TodoText trims the text and checks it is non-empty. It returns the
// trimmed value so callers store the normalized form.
func TodoText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", common.NewValidationError("text", "is required")
	}
	return text, nil
}
