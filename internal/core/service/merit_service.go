package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cofd-tools/character-api/internal/core/domain"
	"github.com/cofd-tools/character-api/internal/core/ports"
)

type MeritService struct {
	repo   ports.MeritRepository
	cache  ports.MeritCache
	logger zerolog.Logger
	now    func() time.Time
}

// NewMeritService returns a MeritService. cache may be nil, in which case
// every List goes to the repository.
func NewMeritService(repo ports.MeritRepository, cache ports.MeritCache, logger zerolog.Logger, opts ...Option) *MeritService {
	o := buildOptions(opts)
	return &MeritService{repo: repo, cache: cache, logger: logger, now: o.now}
}

// List returns the whole catalog ordered by name, served from the cache when
// it is warm. Cache failures are logged and bypassed.
func (s *MeritService) List(ctx context.Context) ([]domain.Merit, error) {
	if s.cache != nil {
		merits, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("merit cache read failed, loading from store")
		} else if ok {
			return merits, nil
		}
	}

	merits, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if merits == nil {
		merits = []domain.Merit{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, merits); err != nil {
			s.logger.Warn().Err(err).Msg("merit cache write failed")
		}
	}
	return merits, nil
}

func (s *MeritService) Get(ctx context.Context, id string) (*domain.Merit, error) {
	return s.repo.Get(ctx, id)
}

func (s *MeritService) Create(ctx context.Context, userID string, input domain.MeritInput) (*domain.Merit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.Merit{
		UserID:        userID,
		Name:          input.Name,
		Rating:        input.Rating,
		Prerequisites: input.Prerequisites,
		Description:   input.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("merit_id", created.ID).Str("user_id", userID).Msg("merit created")
	return created, nil
}

// Replace overwrites a merit owned by userID.
func (s *MeritService) Replace(ctx context.Context, userID, id string, input domain.MeritInput) (*domain.Merit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Replace(ctx, userID, id, input, s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("merit_id", id).Str("user_id", userID).Msg("merit replaced")
	return updated, nil
}

// Delete removes a merit owned by userID. Missing merits are not an error.
func (s *MeritService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("merit_id", id).Str("user_id", userID).Msg("merit deleted")
	return nil
}

func (s *MeritService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("merit cache invalidation failed")
	}
}
