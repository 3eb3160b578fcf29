// Package tokens persists the per-user set of live session tokens.
// A token authenticates only while its row exists; deleting the row is
// the revocation mechanism.
package tokens

import (
	"context"

	"github.com/google/uuid"

	"TASKHIVE_BACK-END/internal/models"
)

// Repository manages the live session token set.
type Repository interface {
	// Add appends a freshly issued token to the user's session set.
	Add(ctx context.Context, userID uuid.UUID, token string) error

	// Delete removes exactly the given token for the given user. Other
	// sessions of the same user are untouched.
	Delete(ctx context.Context, userID uuid.UUID, token string) error

	// FindUser resolves a token to its owning user, requiring both that the
	// token row exists (not revoked) and that it belongs to userID. Returns
	// common.ErrNotFound otherwise.
	FindUser(ctx context.Context, token string, userID uuid.UUID) (*models.User, error)
}
