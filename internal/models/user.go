package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Hidden from JSON responses
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// SessionToken is one entry in a user's live token set. A user may hold any
// number of concurrent sessions; deleting a row revokes that session only.
type SessionToken struct {
	Token     string    `json:"token" db:"token"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Access    string    `json:"access" db:"access"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AccessAuth is the only access tag issued for session tokens.
const AccessAuth = "auth"
