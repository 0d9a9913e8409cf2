package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/careerpulse/internal/auth"
	"github.com/spec-kit/careerpulse/internal/config"
	"github.com/spec-kit/careerpulse/internal/domain"
	"github.com/spec-kit/careerpulse/internal/repository"
	apperrors "github.com/spec-kit/careerpulse/pkg/util"
)

const uniqueViolationCode = "23505"

// Messages are fixed: the duplicate-account message does not say which field
// collided, and login failures read the same whether the email is unknown or
// the password is wrong.
const (
	msgDuplicateAccount   = "Email or username already exists"
	msgInvalidCredentials = "Invalid credentials"
)

// AuthService manages account creation and credential verification, and
// issues the bearer tokens the boundary layer resolves back to identities.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// RegisterInput describes a registration payload. All fields are required and
// validated at the boundary before this call.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// NewAuthService builds the service with an injected signing configuration.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTLDays),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account and returns it with a fresh token. The
// duplicate pre-check is a fast path; the unique constraints on the users
// table are the authoritative enforcement, so a unique violation from the
// insert itself maps to the same Conflict.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, time.Time, error) {
	exists, err := s.users.ExistsByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewStorageError(err)
	}
	if exists {
		return nil, "", time.Time{}, apperrors.NewConflict(msgDuplicateAccount)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, "", time.Time{}, apperrors.NewConflict(msgDuplicateAccount)
		}
		return nil, "", time.Time{}, apperrors.NewStorageError(err)
	}

	token, exp, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// produce the identical Unauthorized message.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized(msgInvalidCredentials)
		}
		return nil, "", time.Time{}, apperrors.NewStorageError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized(msgInvalidCredentials)
	}

	token, exp, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
