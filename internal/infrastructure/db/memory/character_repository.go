package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

type CharacterRepository struct {
	store *Store
}

func cloneCharacter(c domain.Character) domain.Character {
	c.Merits = append([]domain.CharacterMerit{}, c.Merits...)
	c.Conditions = append([]string{}, c.Conditions...)
	c.Aspirations = append([]string{}, c.Aspirations...)
	return c
}

func (r *CharacterRepository) List(_ context.Context, userID string) ([]domain.Character, error) {
	if err := checkOwner(userID); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Character, 0)
	for _, c := range r.store.characters {
		if c.UserID == userID {
			out = append(out, cloneCharacter(c))
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Character) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (r *CharacterRepository) Get(_ context.Context, userID, id string) (*domain.Character, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := checkOwner(userID); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.characters[id]
	if !ok || c.UserID != userID {
		return nil, domain.ErrNotFound
	}
	c = cloneCharacter(c)
	return &c, nil
}

func (r *CharacterRepository) Create(_ context.Context, c *domain.Character) (*domain.Character, error) {
	if err := checkOwner(c.UserID); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := cloneCharacter(*c)
	stored.ID = newID()
	r.store.characters[stored.ID] = stored

	out := cloneCharacter(stored)
	return &out, nil
}

func (r *CharacterRepository) Update(_ context.Context, userID, id string, fields domain.CharacterFields, updatedAt time.Time) (*domain.Character, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := checkOwner(userID); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.characters[id]
	if !ok || c.UserID != userID {
		return nil, domain.ErrNotFound
	}
	c = cloneCharacter(c)
	c.Apply(fields)
	c.UpdatedAt = updatedAt
	r.store.characters[id] = c

	out := cloneCharacter(c)
	return &out, nil
}

func (r *CharacterRepository) Delete(_ context.Context, userID, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := checkOwner(userID); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if c, ok := r.store.characters[id]; ok && c.UserID == userID {
		delete(r.store.characters, id)
	}
	return nil
}
