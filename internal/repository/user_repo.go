package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"weather-api/internal/domain"
)

// ErrNotFound indica que el usuario buscado no existe.
var ErrNotFound = errors.New("user not found")

// ConflictError señala una violación de unicidad al crear un usuario.
// Field identifica la columna en conflicto ("username" o "email"); queda
// vacío cuando la violación no se puede atribuir a una columna concreta.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "unique constraint failed"
	}
	return fmt.Sprintf("%s already taken", e.Field)
}

// UserRepository define el contrato de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
}

// DB abstrae las operaciones del pool usadas por el repositorio.
// La satisfacen *pgxpool.Pool y los pools de pgxmock en tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgUserRepository implementa UserRepository usando pgx.
type PgUserRepository struct {
	db DB
}

func NewPgUserRepository(db DB) *PgUserRepository {
	return &PgUserRepository{db: db}
}

func (r *PgUserRepository) Create(ctx context.Context, user domain.User) error {
	const query = `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.CreatedAt,
	)
	if err != nil {
		if conflict := conflictFrom(err); conflict != nil {
			return conflict
		}
		return err
	}
	return nil
}

func (r *PgUserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	const query = `
		SELECT id, username, email, password_hash, first_name, last_name, created_at
		FROM users
		WHERE username = $1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	const query = `
		SELECT id, username, email, password_hash, first_name, last_name, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *PgUserRepository) scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// conflictFrom traduce violaciones de unicidad de Postgres a ConflictError,
// atribuyendo la columna a partir del nombre de la constraint.
func conflictFrom(err error) *ConflictError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return &ConflictError{Field: "username"}
	case strings.Contains(pgErr.ConstraintName, "email"):
		return &ConflictError{Field: "email"}
	default:
		return &ConflictError{}
	}
}
