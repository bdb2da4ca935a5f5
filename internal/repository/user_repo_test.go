package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"

	"weather-api/internal/domain"
)

func testUser() domain.User {
	return domain.User{
		ID:           "u1",
		Username:     "alice1",
		Email:        "a@b.com",
		PasswordHash: "$2a$10$hash",
		FirstName:    "A",
		LastName:     "B",
		CreatedAt:    time.Now().UTC(),
	}
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestPgUserRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	user := testUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewPgUserRepository(mock)
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPgUserRepository_CreateAttributesUsernameConflict(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	repo := NewPgUserRepository(mock)
	err := repo.Create(context.Background(), testUser())

	var conflict *ConflictError
	if !errors.As(err, &conflict) || conflict.Field != "username" {
		t.Fatalf("expected username conflict, got %v", err)
	}
}

func TestPgUserRepository_CreateAttributesEmailConflict(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	repo := NewPgUserRepository(mock)
	err := repo.Create(context.Background(), testUser())

	var conflict *ConflictError
	if !errors.As(err, &conflict) || conflict.Field != "email" {
		t.Fatalf("expected email conflict, got %v", err)
	}
}

func TestPgUserRepository_CreateGenericConflictWhenUnattributable(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_unknown_key"})

	repo := NewPgUserRepository(mock)
	err := repo.Create(context.Background(), testUser())

	var conflict *ConflictError
	if !errors.As(err, &conflict) || conflict.Field != "" {
		t.Fatalf("expected generic conflict, got %v", err)
	}
}

func TestPgUserRepository_CreatePassesThroughOtherErrors(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection refused"))

	repo := NewPgUserRepository(mock)
	err := repo.Create(context.Background(), testUser())

	var conflict *ConflictError
	if errors.As(err, &conflict) {
		t.Fatalf("non-unique errors must not become conflicts: %v", err)
	}
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestPgUserRepository_GetByUsername(t *testing.T) {
	mock := newMockPool(t)
	user := testUser()

	rows := pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "first_name", "last_name", "created_at"}).
		AddRow(user.ID, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.CreatedAt)
	mock.ExpectQuery("WHERE username").WithArgs("alice1").WillReturnRows(rows)

	repo := NewPgUserRepository(mock)
	got, err := repo.GetByUsername(context.Background(), "alice1")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if got.ID != user.ID || got.PasswordHash != user.PasswordHash {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestPgUserRepository_GetByUsernameNotFound(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery("WHERE username").WithArgs("nobody").WillReturnError(pgx.ErrNoRows)

	repo := NewPgUserRepository(mock)
	if _, err := repo.GetByUsername(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPgUserRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	user := testUser()

	rows := pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "first_name", "last_name", "created_at"}).
		AddRow(user.ID, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.CreatedAt)
	mock.ExpectQuery("WHERE id").WithArgs("u1").WillReturnRows(rows)

	repo := NewPgUserRepository(mock)
	got, err := repo.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Username != "alice1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestPgUserRepository_GetByIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery("WHERE id").WithArgs("missing").WillReturnError(pgx.ErrNoRows)

	repo := NewPgUserRepository(mock)
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
