// Package todos persists todo documents scoped to their owning user.
//
// Every operation that names a todo id also names the owner; a missing row,
// a malformed id, and a row owned by someone else all surface as the same
// common.ErrNotFound so callers cannot probe for other users' todos.
package todos

import (
	"context"

	"github.com/google/uuid"

	"TASKHIVE_BACK-END/internal/models"
)

// Repository is the ownership-scoped todo store.
type Repository interface {
	// Create inserts a new pending todo owned by ownerID. Text is trimmed
	// and must be non-empty.
	Create(ctx context.Context, ownerID uuid.UUID, text string) (*models.Todo, error)

	// List returns all todos owned by ownerID.
	List(ctx context.Context, ownerID uuid.UUID) ([]models.Todo, error)

	// Get returns the todo with the given raw id if it is owned by ownerID.
	Get(ctx context.Context, ownerID uuid.UUID, id string) (*models.Todo, error)

	// Update applies the patch atomically. A completion flip to true stamps
	// completed_at; a flip to false clears it.
	Update(ctx context.Context, ownerID uuid.UUID, id string, patch models.TodoPatch) (*models.Todo, error)

	// Delete removes the todo and returns its last snapshot.
	Delete(ctx context.Context, ownerID uuid.UUID, id string) (*models.Todo, error)
}
