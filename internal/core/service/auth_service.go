package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cofd-tools/character-api/internal/core/domain"
	"github.com/cofd-tools/character-api/internal/core/ports"
)

const (
	usernameMinLen = 1
	passwordMinLen = 6
	// bcrypt ignores input beyond 72 bytes.
	passwordMaxLen = 72
)

// AuthService implements registration, login and token refresh.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger, opts ...Option) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	o := buildOptions(opts)
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger, now: o.now}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	name := ""
	if in.Name != nil {
		name = strings.TrimSpace(*in.Name)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     *in.Username,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// validateRegistration applies the registration rules in order: required
// fields, surrounding whitespace, then length bounds.
func validateRegistration(in ports.RegisterInput) error {
	if in.Username == nil {
		return domain.NewInputError("username", "Missing 'username' in request body")
	}
	if in.Password == nil {
		return domain.NewInputError("password", "Missing 'password' in request body")
	}

	trimmed := []struct{ field, value string }{
		{"username", *in.Username},
		{"password", *in.Password},
	}
	for _, f := range trimmed {
		if strings.TrimSpace(f.value) != f.value {
			return domain.NewInputError(f.field, fmt.Sprintf("Field: '%s' cannot start or end with whitespace", f.field))
		}
	}

	if len(*in.Username) < usernameMinLen {
		return domain.NewInputError("username", fmt.Sprintf("Field: 'username' must be at least %d characters long", usernameMinLen))
	}
	if len(*in.Password) < passwordMinLen {
		return domain.NewInputError("password", fmt.Sprintf("Field: 'password' must be at least %d characters long", passwordMinLen))
	}
	if len(*in.Password) > passwordMaxLen {
		return domain.NewInputError("password", fmt.Sprintf("Field: 'password' must be at most %d characters long", passwordMaxLen))
	}
	return nil
}

// Login verifies the credentials and returns a signed token. An unknown
// username and a wrong password are reported identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.generateToken(ports.Identity{UserID: user.ID, Username: user.Username, Name: user.Name})
}

// Refresh issues a fresh token for an already verified identity.
func (s *AuthService) Refresh(_ context.Context, identity ports.Identity) (string, error) {
	if identity.UserID == "" {
		return "", domain.ErrUnauthenticated
	}
	return s.generateToken(identity)
}

func (s *AuthService) generateToken(id ports.Identity) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":      id.UserID,
		"username": id.Username,
		"name":     id.Name,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
