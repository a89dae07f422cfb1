package main

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cofd-tools/character-api/internal/core/domain"
	"github.com/cofd-tools/character-api/internal/core/service"
	"github.com/cofd-tools/character-api/internal/infrastructure/db/memory"
)

func newMemorySeeder() (*seeder, *memory.Store) {
	store := memory.NewStore()
	log := zerolog.Nop()
	return &seeder{
		auth:       service.NewAuthService(store.Users(), "secret", 0, log),
		characters: service.NewCharacterService(store.Characters(), log),
		merits:     service.NewMeritService(store.Merits(), nil, log),
		log:        log,
	}, store
}

func TestBundledSeedFileLoads(t *testing.T) {
	data, err := loadSeed("seed.json")
	require.NoError(t, err)
	require.Len(t, data.Users, 2)
	assert.Equal(t, "exampleUser", data.Users[0].Username)
	require.Len(t, data.Users[0].Characters, 1)
	assert.Equal(t, "Miscellaneous", *data.Users[0].Characters[0].Name)
}

func TestSeeder_SeedsBundledFile(t *testing.T) {
	data, err := loadSeed("seed.json")
	require.NoError(t, err)

	s, store := newMemorySeeder()
	ctx := context.Background()
	require.NoError(t, s.seed(ctx, data))

	user, err := store.Users().FindByUsername(ctx, "exampleUser")
	require.NoError(t, err)

	chars, err := store.Characters().List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, chars, 1)
	assert.Equal(t, 3, chars[0].Skills.Mental.Medicine)
	assert.Equal(t, 5, chars[0].CombatBlock.Size)

	merits, err := store.Merits().List(ctx)
	require.NoError(t, err)
	assert.Len(t, merits, 2)
}

func TestSeeder_StopsOnInvalidRecord(t *testing.T) {
	size := 9
	name := "Giant"
	data := &seedFile{Users: []seedUser{{
		Username:   "exampleUser",
		Password:   "examplePass",
		Characters: []domain.CharacterFields{{Name: &name, CombatBlock: &domain.CombatBlockFields{Size: &size}}},
	}}}

	s, _ := newMemorySeeder()
	err := s.seed(context.Background(), data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := loadSeed("does-not-exist.json")
	assert.Error(t, err)
}
