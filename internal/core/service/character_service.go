package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cofd-tools/character-api/internal/core/domain"
	"github.com/cofd-tools/character-api/internal/core/ports"
)

// Option customises a service at construction time.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now as the source of record timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type CharacterService struct {
	repo   ports.CharacterRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewCharacterService(repo ports.CharacterRepository, logger zerolog.Logger, opts ...Option) *CharacterService {
	o := buildOptions(opts)
	return &CharacterService{repo: repo, logger: logger, now: o.now}
}

// List returns the caller's characters, most recently updated first. It never
// returns a nil slice.
func (s *CharacterService) List(ctx context.Context, userID string) ([]domain.Character, error) {
	chars, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if chars == nil {
		chars = []domain.Character{}
	}
	return chars, nil
}

func (s *CharacterService) Get(ctx context.Context, userID, id string) (*domain.Character, error) {
	return s.repo.Get(ctx, userID, id)
}

// Create builds a sheet with default traits, overlays the supplied fields and
// stores it under userID.
func (s *CharacterService) Create(ctx context.Context, userID string, fields domain.CharacterFields) (*domain.Character, error) {
	if fields.Name == nil {
		return nil, domain.MissingField("name")
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	c := domain.NewCharacter(userID)
	c.Apply(fields)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := s.repo.Create(ctx, &c)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create character")
		return nil, err
	}

	s.logger.Info().Str("character_id", created.ID).Str("user_id", userID).Msg("character created")
	return created, nil
}

// Update applies only the supplied fields and refreshes updatedAt.
func (s *CharacterService) Update(ctx context.Context, userID, id string, fields domain.CharacterFields) (*domain.Character, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, userID, id, fields, s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("character_id", id).Str("user_id", userID).Msg("character updated")
	return updated, nil
}

// Delete removes the character if the caller owns it. Deleting a character
// that does not exist succeeds.
func (s *CharacterService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.Info().Str("character_id", id).Str("user_id", userID).Msg("character deleted")
	return nil
}
