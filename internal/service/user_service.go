package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-api/internal/domain"
	"weather-api/internal/repository"
)

// ErrInvalidCredentials cubre tanto usuario inexistente como password
// incorrecto; el llamador no puede distinguirlos.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService coordina reglas de negocio para usuarios.
type UserService struct {
	logger *zap.Logger
	users  repository.UserRepository
}

func NewUserService(logger *zap.Logger, users repository.UserRepository) *UserService {
	return &UserService{
		logger: logger,
		users:  users,
	}
}

// Signup hashea el password y persiste el usuario nuevo. Las violaciones de
// unicidad del repositorio se propagan como *repository.ConflictError.
func (s *UserService) Signup(ctx context.Context, payload SignupPayload) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	passwordHash, err := HashPassword(payload.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     payload.Username,
		Email:        payload.Email,
		PasswordHash: passwordHash,
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// Authenticate busca por username y compara el password contra el hash.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if user.PasswordHash == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	if !CheckPassword(password, user.PasswordHash) {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}
