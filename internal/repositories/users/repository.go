// Package users persists account identities.
package users

import (
	"context"

	"github.com/google/uuid"

	"TASKHIVE_BACK-END/internal/models"
)

// Repository is the credential store for user accounts.
type Repository interface {
	// Create inserts a new user. A duplicate email surfaces as
	// common.ErrDuplicateEmail via the unique constraint, never a pre-check.
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)

	// GetByEmail returns the user registered under email or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id or common.ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
