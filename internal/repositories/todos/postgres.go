package todos

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
	"TASKHIVE_BACK-END/internal/validation"
)

const todoColumns = "id, owner_id, text, is_completed, completed_at, created_at, updated_at"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, ownerID uuid.UUID, text string) (*models.Todo, error) {
	text, err := validation.TodoText(text)
	if err != nil {
		return nil, err
	}

	todo := &models.Todo{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Text:      text,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	query :=
		`INSERT INTO todos (id, owner_id, text, is_completed, created_at, updated_at)
         VALUES ($1, $2, $3, FALSE, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query,
		todo.ID, todo.OwnerID, todo.Text, todo.CreatedAt, todo.UpdatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return todo, nil
}

func (r *PostgresRepository) List(ctx context.Context, ownerID uuid.UUID) ([]models.Todo, error) {
	query :=
		`SELECT ` + todoColumns + ` FROM todos
         WHERE owner_id = $1
         ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		var completedAt sql.NullInt64
		if err := rows.Scan(&todo.ID, &todo.OwnerID, &todo.Text, &todo.IsCompleted,
			&completedAt, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if completedAt.Valid {
			todo.CompletedAt = &completedAt.Int64
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return todos, nil
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID uuid.UUID, id string) (*models.Todo, error) {
	todoID, err := uuid.Parse(id)
	if err != nil {
		// Malformed ids are indistinguishable from missing todos.
		return nil, common.ErrNotFound
	}

	query :=
		`SELECT ` + todoColumns + ` FROM todos
         WHERE id = $1 AND owner_id = $2`

	return r.scanTodo(r.db.QueryRowContext(ctx, query, todoID, ownerID))
}

// Update is a single atomic UPDATE so a concurrent delete on the same id
// resolves as either success or ErrNotFound, never a partial write. The CASE
// expression keeps completed_at coupled to is_completed: stamped on the flip
// to true, preserved while true, cleared on the flip to false.
func (r *PostgresRepository) Update(ctx context.Context, ownerID uuid.UUID, id string, patch models.TodoPatch) (*models.Todo, error) {
	todoID, err := uuid.Parse(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	if patch.Text != nil {
		text, err := validation.TodoText(*patch.Text)
		if err != nil {
			return nil, err
		}
		patch.Text = &text
	}

	query :=
		`UPDATE todos
         SET text = COALESCE($3, text),
             is_completed = COALESCE($4, is_completed),
             completed_at = CASE WHEN COALESCE($4, is_completed)
                                 THEN COALESCE(completed_at, $5)
                                 ELSE NULL END,
             updated_at = $6
         WHERE id = $1 AND owner_id = $2
         RETURNING ` + todoColumns

	now := time.Now()
	return r.scanTodo(r.db.QueryRowContext(ctx, query,
		todoID, ownerID, patch.Text, patch.IsCompleted, now.UnixMilli(), now))
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID uuid.UUID, id string) (*models.Todo, error) {
	todoID, err := uuid.Parse(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	query :=
		`DELETE FROM todos
         WHERE id = $1 AND owner_id = $2
         RETURNING ` + todoColumns

	return r.scanTodo(r.db.QueryRowContext(ctx, query, todoID, ownerID))
}

func (r *PostgresRepository) scanTodo(row *sql.Row) (*models.Todo, error) {
	todo := &models.Todo{}
	var completedAt sql.NullInt64

	err := row.Scan(&todo.ID, &todo.OwnerID, &todo.Text, &todo.IsCompleted,
		&completedAt, &todo.CreatedAt, &todo.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if completedAt.Valid {
		todo.CompletedAt = &completedAt.Int64
	}

	return todo, nil
}
