package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"TASKHIVE_BACK-END/internal/config"
	"TASKHIVE_BACK-END/internal/models"
	"TASKHIVE_BACK-END/internal/utils"
)

// AuthHeader is the request header carrying the session token.
const AuthHeader = "x-auth"

var nowFunc = time.Now

// SessionStore resolves a token to its owning user. The lookup is the
// authoritative revocation check: a token missing from the live set never
// authenticates, no matter how valid its signature is.
type SessionStore interface {
	FindUser(ctx context.Context, token string, userID uuid.UUID) (*models.User, error)
}

// Authenticator gates requests behind the x-auth header.
type Authenticator struct {
	sessions SessionStore
	cfg      *config.JWTConfig
}

// NewAuthenticator creates an Authenticator backed by the given session store
func NewAuthenticator(sessions SessionStore, cfg *config.JWTConfig) *Authenticator {
	return &Authenticator{sessions: sessions, cfg: cfg}
}

// Require wraps a handler so it only runs for authenticated requests. The
// check is two explicit steps: verify the signature, then confirm the token
// is still in the user's live set. Every failure is a bare 401 with an empty
// body.
func (a *Authenticator) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get(AuthHeader)
		if tokenString == "" {
			utils.WriteUnauthorized(w)
			return
		}

		claims, err := ValidateToken(tokenString, a.cfg)
		if err != nil {
			utils.WriteUnauthorized(w)
			return
		}

		user, err := a.sessions.FindUser(r.Context(), tokenString, claims.UserID)
		if err != nil {
			utils.WriteUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAuth(r.Context(), user, tokenString)))
	}
}
