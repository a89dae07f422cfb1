package ports

import (
	"context"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

// RegisterInput carries a registration payload. Nil means the field was not
// present in the request body.
type RegisterInput struct {
	Username *string
	Password *string
	Name     *string
}

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	UserID   string
	Username string
	Name     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Refresh(ctx context.Context, identity Identity) (string, error)
}
