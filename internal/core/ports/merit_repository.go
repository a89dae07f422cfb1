package ports

import (
	"context"
	"time"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

// MeritRepository defines persistence for the merit catalog. Name uniqueness
// is enforced by the store and reported as domain.ErrDuplicateName.
type MeritRepository interface {
	// List returns every merit ordered by name.
	List(ctx context.Context) ([]domain.Merit, error)
	Get(ctx context.Context, id string) (*domain.Merit, error)
	Create(ctx context.Context, m *domain.Merit) (*domain.Merit, error)
	// Replace overwrites the writable fields of a merit owned by userID.
	Replace(ctx context.Context, userID, id string, input domain.MeritInput, updatedAt time.Time) (*domain.Merit, error)
	// Delete removes the merit if owned by userID. A missing record is not an error.
	Delete(ctx context.Context, userID, id string) error
}

// MeritCache holds the rendered catalog between mutations.
type MeritCache interface {
	Get(ctx context.Context) ([]domain.Merit, bool, error)
	Set(ctx context.Context, merits []domain.Merit) error
	Invalidate(ctx context.Context) error
}
