package ports

import (
	"context"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

// UserRepository defines persistence for registered accounts. Create maps a
// username uniqueness violation to domain.ErrDuplicateUsername.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
