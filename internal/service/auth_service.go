package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"tartarus/api/internal/config"
	"tartarus/api/internal/ids"
	"tartarus/api/internal/models"
	"tartarus/api/internal/repository"
	"tartarus/api/internal/security"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so the
	// two cases are indistinguishable at the API boundary.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already in use")
)

type AuthService struct {
	users *repository.UserRepository
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewAuthService(users *repository.UserRepository, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
		log:   log,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Postgres.QueryTimeout)
	defer cancel()

	email := normalizeEmail(input.Email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return models.User{}, err
	}

	passwordHash, err := security.HashPassword(input.Password, s.cfg.Security.BcryptCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Email:        email,
		PasswordHash: passwordHash,
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = &name
	}

	if err := s.users.Create(ctx, user); err != nil {
		return models.User{}, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and issues a bearer token. The token is the only
// session state; nothing is stored server-side.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Postgres.QueryTimeout)
	defer cancel()

	user, err := s.users.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !security.VerifyPassword(input.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := security.IssueToken(
		s.cfg.Security.JWTSecret,
		user.ID,
		user.Email,
		s.cfg.Security.TokenTTL,
	)
	if err != nil {
		return "", err
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
