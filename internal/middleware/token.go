package middleware

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"TASKHIVE_BACK-END/internal/common"
	"TASKHIVE_BACK-END/internal/config"
	"TASKHIVE_BACK-END/internal/models"
)

// Claims represents the claims in a session token. Purpose pins the token to
// session auth so tokens minted for any other use can never authenticate a
// request. Tokens carry no expiry; they stay valid until revoked by removal
// from the user's token set.
type Claims struct {
	UserID  uuid.UUID `json:"user_id"`
	Purpose string    `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateToken generates a signed session token for the given user
func GenerateToken(userID uuid.UUID, cfg *config.JWTConfig) (string, error) {
	claims := Claims{
		UserID:  userID,
		Purpose: models.AccessAuth,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(nowFunc()),
			ID:       uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken checks the signature and purpose of a session token. Any
// failure collapses into common.ErrInvalidToken; callers must still confirm
// membership in the live token set before trusting the claims.
func ValidateToken(tokenString string, cfg *config.JWTConfig) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		return nil, common.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, common.ErrInvalidToken
	}

	if claims.Purpose != models.AccessAuth {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
