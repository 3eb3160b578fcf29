package tokens

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"TASKHIVE_BACK-END/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestAdd_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+user_tokens\s*\(token,\s*user_id,\s*access,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*$`).
		WithArgs("tok-1", userID, "auth", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Add(context.Background(), userID, "tok-1"); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestDelete_ScopedToUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+user_tokens\s+WHERE\s+token\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`).
		WithArgs("tok-1", userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), userID, "tok-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestFindUser_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(userID, "a@example.com", "hashed", time.Now(), time.Now())

	mock.ExpectQuery(`(?s)JOIN\s+user_tokens\s+t\s+ON\s+t\.user_id\s*=\s*u\.id`).
		WithArgs("tok-1", userID, "auth").
		WillReturnRows(rows)

	u, err := repo.FindUser(context.Background(), "tok-1", userID)
	if err != nil {
		t.Fatalf("FindUser error: %v", err)
	}
	if u.ID != userID || u.Email != "a@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestFindUser_Revoked(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	mock.ExpectQuery(`SELECT`).
		WithArgs("tok-revoked", userID, "auth").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUser(context.Background(), "tok-revoked", userID)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestFindUser_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	mock.ExpectQuery(`SELECT`).
		WithArgs("tok-1", userID, "auth").
		WillReturnError(errors.New("db down"))

	_, err := repo.FindUser(context.Background(), "tok-1", userID)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
