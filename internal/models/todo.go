package models

import (
	"time"

	"github.com/google/uuid"
)

// Todo is a single task owned by exactly one user.
//
// CompletedAt is a Unix-millisecond timestamp and is non-nil if and only if
// IsCompleted is true. The coupling is enforced by the todos repository.
type Todo struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OwnerID     uuid.UUID `json:"-" db:"owner_id"`
	Text        string    `json:"text" db:"text"`
	IsCompleted bool      `json:"isCompleted" db:"is_completed"`
	CompletedAt *int64    `json:"completedAt,omitempty" db:"completed_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// TodoPatch carries the mutable fields of a todo. Nil means "leave as is".
type TodoPatch struct {
	Text        *string
	IsCompleted *bool
}
