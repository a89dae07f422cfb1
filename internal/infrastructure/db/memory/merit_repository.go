package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

type MeritRepository struct {
	store *Store
}

func (r *MeritRepository) List(_ context.Context) ([]domain.Merit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Merit, 0, len(r.store.merits))
	for _, m := range r.store.merits {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b domain.Merit) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (r *MeritRepository) Get(_ context.Context, id string) (*domain.Merit, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.merits[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &m, nil
}

func (r *MeritRepository) Create(_ context.Context, m *domain.Merit) (*domain.Merit, error) {
	if err := checkOwner(m.UserID); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.nameTaken(m.Name, "") {
		return nil, domain.ErrDuplicateName
	}

	stored := *m
	stored.ID = newID()
	r.store.merits[stored.ID] = stored
	return &stored, nil
}

func (r *MeritRepository) Replace(_ context.Context, userID, id string, input domain.MeritInput, updatedAt time.Time) (*domain.Merit, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := checkOwner(userID); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.merits[id]
	if !ok || m.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if r.nameTaken(input.Name, id) {
		return nil, domain.ErrDuplicateName
	}

	m.Name = input.Name
	m.Rating = input.Rating
	m.Prerequisites = input.Prerequisites
	m.Description = input.Description
	m.UpdatedAt = updatedAt
	r.store.merits[id] = m
	return &m, nil
}

func (r *MeritRepository) Delete(_ context.Context, userID, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := checkOwner(userID); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if m, ok := r.store.merits[id]; ok && m.UserID == userID {
		delete(r.store.merits, id)
	}
	return nil
}

// nameTaken must be called with the lock held.
func (r *MeritRepository) nameTaken(name, exceptID string) bool {
	for id, m := range r.store.merits {
		if id != exceptID && m.Name == name {
			return true
		}
	}
	return false
}
