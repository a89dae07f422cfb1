package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/cofd-tools/character-api/internal/core/domain"
	"github.com/cofd-tools/character-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrDuplicateUsername
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id-" + user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

func registration(username, password, name string) ports.RegisterInput {
	return ports.RegisterInput{Username: &username, Password: &password, Name: &name}
}

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, "secret", time.Hour, discardLogger)
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), registration("exampleUser", "examplePass", "  Example User "))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "examplePass" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("examplePass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Name != "Example User" {
		t.Fatalf("expected trimmed name, got %q", user.Name)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo())
	user, pass := "exampleUser", "examplePass"

	cases := []struct {
		name  string
		input ports.RegisterInput
		want  string
	}{
		{"missing username", ports.RegisterInput{Password: &pass}, "Missing 'username' in request body"},
		{"missing password", ports.RegisterInput{Username: &user}, "Missing 'password' in request body"},
		{"untrimmed username", registration(" exampleUser", pass, ""), "Field: 'username' cannot start or end with whitespace"},
		{"untrimmed password", registration(user, "examplePass ", ""), "Field: 'password' cannot start or end with whitespace"},
		{"empty username", registration("", pass, ""), "Field: 'username' must be at least 1 characters long"},
		{"short password", registration(user, "short", ""), "Field: 'password' must be at least 6 characters long"},
		{"long password", registration(user, strings.Repeat("a", 73), ""), "Field: 'password' must be at most 72 characters long"},
	}

	for _, tc := range cases {
		_, err := svc.Register(context.Background(), tc.input)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
			continue
		}
		if err.Error() != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, err.Error())
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), registration("bob", "password1", ""))
	if _, err := svc.Register(context.Background(), registration("bob", "password2", "")); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registration("carol", "s3cret!", "Carol")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol", "s3cret!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "id-carol" || claims["username"] != "carol" {
		t.Fatalf("unexpected claims: %v", claims)
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatal("expected a token id")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), registration("dave", "goodpass", ""))
	if _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserLooksLikeBadPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	token, err := svc.Refresh(context.Background(), ports.Identity{UserID: "u1", Username: "erin"})
	if err != nil || token == "" {
		t.Fatalf("refresh failed: %q %v", token, err)
	}

	if _, err := svc.Refresh(context.Background(), ports.Identity{}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
