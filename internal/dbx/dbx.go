// Package dbx provides the minimal database/sql interface shared by the
// repositories. Both *sql.DB and *sql.Tx satisfy DBTX, which keeps the
// repositories testable with sqlmock.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
