package utils

import (
	"context"

	"github.com/google/uuid"

	"TASKHIVE_BACK-END/internal/models"
)

// Context keys populated by the auth middleware.
const (
	ContextKeyUser   = "user"
	ContextKeyUserID = "user_id"
	ContextKeyToken  = "auth_token"
)

// WithAuth returns ctx carrying the authenticated user and the raw token
// that authenticated this request.
func WithAuth(ctx context.Context, user *models.User, token string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyUser, user)
	ctx = context.WithValue(ctx, ContextKeyUserID, user.ID)
	return context.WithValue(ctx, ContextKeyToken, token)
}

// GetUserFromContext returns the authenticated user, if any.
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(ContextKeyUser).(*models.User)
	return user, ok
}

// GetUserIDFromContext returns the authenticated user's id, if any.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(uuid.UUID)
	return id, ok
}

// GetTokenFromContext returns the raw token that authenticated the request.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ContextKeyToken).(string)
	return token, ok
}
