package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"TASKHIVE_BACK-END/internal/common"
	"TASKHIVE_BACK-END/internal/dbx"
	"TASKHIVE_BACK-END/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, userID uuid.UUID, token string) error {
	query :=
		`INSERT INTO user_tokens (token, user_id, access, created_at)
         VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, token, userID, models.AccessAuth, time.Now())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID uuid.UUID, token string) error {
	query :=
		`DELETE FROM user_tokens
         WHERE token = $1 AND user_id = $2`

	_, err := r.db.ExecContext(ctx, query, token, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// FindUser is the authoritative revocation check: a valid signature alone is
// not enough, the token must still be present in the live set.
func (r *PostgresRepository) FindUser(ctx context.Context, token string, userID uuid.UUID) (*models.User, error) {
	query :=
		`SELECT u.id, u.email, u.password_hash, u.created_at, u.updated_at
         FROM users u
         JOIN user_tokens t ON t.user_id = u.id
         WHERE t.token = $1 AND t.user_id = $2 AND t.access = $3`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, token, userID, models.AccessAuth).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
