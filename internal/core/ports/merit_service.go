package ports

import (
	"context"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

type MeritService interface {
	List(ctx context.Context) ([]domain.Merit, error)
	Get(ctx context.Context, id string) (*domain.Merit, error)
	Create(ctx context.Context, userID string, input domain.MeritInput) (*domain.Merit, error)
	Replace(ctx context.Context, userID, id string, input domain.MeritInput) (*domain.Merit, error)
	Delete(ctx context.Context, userID, id string) error
}
