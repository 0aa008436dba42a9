package repository_test

import (
	"errors"
	"regexp"
	"testing"

	"brewmatic/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUserRepository_Create_ReturnsInsertID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "hash-1").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Create("alice", "hash-1")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if id != 7 {
		t.Fatalf("id=%d, want 7", id)
	}
}

func TestUserRepository_Create_DuplicateErrorPropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "hash-1").
		WillReturnError(errors.New("UNIQUE constraint failed: users.username"))

	if _, err := repo.Create("alice", "hash-1"); err == nil {
		t.Fatalf("Create() expected error, got nil")
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
		AddRow(7, "alice", "hash-1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash FROM users")).
		WithArgs("alice").
		WillReturnRows(rows)

	u, err := repo.GetByUsername("alice")
	if err != nil {
		t.Fatalf("GetByUsername() error: %v", err)
	}
	if u == nil || u.ID != 7 || u.Username != "alice" || u.PasswordHash != "hash-1" {
		t.Fatalf("user wrong: %+v", u)
	}
}

func TestUserRepository_GetByUsername_NotFoundIsNilNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash FROM users")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

	u, err := repo.GetByUsername("ghost")
	if err != nil {
		t.Fatalf("GetByUsername() error: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil user, got %+v", u)
	}
}
