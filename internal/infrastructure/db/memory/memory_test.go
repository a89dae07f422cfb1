package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

var (
	alice = newID()
	bob   = newID()
	t0    = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
)

func seedCharacter(t *testing.T, repo *CharacterRepository, owner, name string, at time.Time) *domain.Character {
	t.Helper()
	c := domain.NewCharacter(owner)
	c.Name = name
	c.CreatedAt, c.UpdatedAt = at, at
	created, err := repo.Create(context.Background(), &c)
	require.NoError(t, err)
	return created
}

func TestCharacterRepository_OwnershipIsolation(t *testing.T) {
	repo := NewStore().Characters()
	ctx := context.Background()
	mine := seedCharacter(t, repo, alice, "Mine", t0)

	_, err := repo.Get(ctx, bob, mine.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	name := "Stolen"
	_, err = repo.Update(ctx, bob, mine.ID, domain.CharacterFields{Name: &name}, t0.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, bob, mine.ID))

	got, err := repo.Get(ctx, alice, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Name)

	list, err := repo.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCharacterRepository_ListNewestFirst(t *testing.T) {
	repo := NewStore().Characters()
	ctx := context.Background()
	older := seedCharacter(t, repo, alice, "Older", t0)
	seedCharacter(t, repo, alice, "Newer", t0.Add(time.Minute))

	list, err := repo.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Newer", list[0].Name)

	name := "Touched"
	_, err = repo.Update(ctx, alice, older.ID, domain.CharacterFields{Name: &name}, t0.Add(time.Hour))
	require.NoError(t, err)

	list, err = repo.List(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "Touched", list[0].Name)
}

func TestCharacterRepository_ReturnsCopies(t *testing.T) {
	repo := NewStore().Characters()
	ctx := context.Background()
	c := seedCharacter(t, repo, alice, "Copy", t0)

	c.Conditions = append(c.Conditions, "Shaken")
	c.Name = "Mutated"

	got, err := repo.Get(ctx, alice, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Copy", got.Name)
	assert.Empty(t, got.Conditions)
}

func TestCharacterRepository_InvalidIDs(t *testing.T) {
	repo := NewStore().Characters()
	ctx := context.Background()

	_, err := repo.Get(ctx, alice, "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	assert.ErrorIs(t, repo.Delete(ctx, alice, "nope"), domain.ErrInvalidID)

	_, err = repo.List(ctx, "not-a-user")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestMeritRepository_UniqueNamesAndOwnership(t *testing.T) {
	repo := NewStore().Merits()
	ctx := context.Background()

	allies, err := repo.Create(ctx, &domain.Merit{UserID: alice, Name: "Allies", Rating: 1})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Merit{UserID: bob, Name: "Resources", Rating: 1})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.Merit{UserID: bob, Name: "Allies", Rating: 2})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	_, err = repo.Replace(ctx, alice, allies.ID, domain.MeritInput{Name: "Resources", Rating: 1}, t0)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	_, err = repo.Replace(ctx, bob, allies.ID, domain.MeritInput{Name: "Allies", Rating: 3}, t0)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	same, err := repo.Replace(ctx, alice, allies.ID, domain.MeritInput{Name: "Allies", Rating: 3}, t0)
	require.NoError(t, err)
	assert.Equal(t, 3, same.Rating)

	got, err := repo.Get(ctx, allies.ID)
	require.NoError(t, err)
	assert.Equal(t, alice, got.UserID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Allies", list[0].Name)
	assert.Equal(t, "Resources", list[1].Name)

	require.NoError(t, repo.Delete(ctx, bob, allies.ID))
	_, err = repo.Get(ctx, allies.ID)
	assert.NoError(t, err)
}

func TestUserRepository(t *testing.T) {
	repo := NewStore().Users()
	ctx := context.Background()

	u, err := repo.Create(ctx, &domain.User{Username: "exampleUser", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	_, err = repo.Create(ctx, &domain.User{Username: "exampleUser"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	found, err := repo.FindByUsername(ctx, "exampleUser")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = repo.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
