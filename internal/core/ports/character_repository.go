package ports

import (
	"context"
	"time"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

// CharacterRepository defines owner-scoped persistence for characters. Every
// lookup embeds userID in the store predicate; a record owned by someone else
// is reported exactly like a missing one (domain.ErrNotFound). Malformed ids
// fail with domain.ErrInvalidID before the store is reached.
type CharacterRepository interface {
	// List returns the caller's characters, most recently updated first.
	List(ctx context.Context, userID string) ([]domain.Character, error)
	Get(ctx context.Context, userID, id string) (*domain.Character, error)
	// Create stores c and returns it with its assigned ID.
	Create(ctx context.Context, c *domain.Character) (*domain.Character, error)
	// Update applies fields and stamps updatedAt in one store operation.
	Update(ctx context.Context, userID, id string, fields domain.CharacterFields, updatedAt time.Time) (*domain.Character, error)
	// Delete removes the character if owned. A missing record is not an error.
	Delete(ctx context.Context, userID, id string) error
}
