package ports

import (
	"context"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

// CharacterService defines the character use cases for an authenticated caller.
type CharacterService interface {
	List(ctx context.Context, userID string) ([]domain.Character, error)
	Get(ctx context.Context, userID, id string) (*domain.Character, error)
	Create(ctx context.Context, userID string, fields domain.CharacterFields) (*domain.Character, error)
	Update(ctx context.Context, userID, id string, fields domain.CharacterFields) (*domain.Character, error)
	Delete(ctx context.Context, userID, id string) error
}
