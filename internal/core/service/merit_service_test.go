package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

type stubMeritRepo struct {
	byID      map[string]*domain.Merit
	seq       int
	listCalls int
}

func newStubMeritRepo() *stubMeritRepo {
	return &stubMeritRepo{byID: make(map[string]*domain.Merit)}
}

func (r *stubMeritRepo) List(_ context.Context) ([]domain.Merit, error) {
	r.listCalls++
	out := []domain.Merit{}
	for _, m := range r.byID {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubMeritRepo) Get(_ context.Context, id string) (*domain.Merit, error) {
	if !validID(id) {
		return nil, domain.ErrInvalidID
	}
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMeritRepo) nameTaken(name, exceptID string) bool {
	for id, m := range r.byID {
		if m.Name == name && id != exceptID {
			return true
		}
	}
	return false
}

func (r *stubMeritRepo) Create(_ context.Context, m *domain.Merit) (*domain.Merit, error) {
	if r.nameTaken(m.Name, "") {
		return nil, domain.ErrDuplicateName
	}
	r.seq++
	clone := *m
	clone.ID = fmt.Sprintf("%024x", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubMeritRepo) Replace(_ context.Context, userID, id string, in domain.MeritInput, updatedAt time.Time) (*domain.Merit, error) {
	if !validID(id) {
		return nil, domain.ErrInvalidID
	}
	m, ok := r.byID[id]
	if !ok || m.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if r.nameTaken(in.Name, id) {
		return nil, domain.ErrDuplicateName
	}
	m.Name, m.Rating, m.Prerequisites, m.Description = in.Name, in.Rating, in.Prerequisites, in.Description
	m.UpdatedAt = updatedAt
	clone := *m
	return &clone, nil
}

func (r *stubMeritRepo) Delete(_ context.Context, userID, id string) error {
	if !validID(id) {
		return domain.ErrInvalidID
	}
	if m, ok := r.byID[id]; ok && m.UserID == userID {
		delete(r.byID, id)
	}
	return nil
}

type stubMeritCache struct {
	merits      []domain.Merit
	warm        bool
	getErr      error
	invalidated int
}

func (c *stubMeritCache) Get(context.Context) ([]domain.Merit, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.merits, c.warm, nil
}

func (c *stubMeritCache) Set(_ context.Context, merits []domain.Merit) error {
	c.merits, c.warm = merits, true
	return nil
}

func (c *stubMeritCache) Invalidate(context.Context) error {
	c.merits, c.warm = nil, false
	c.invalidated++
	return nil
}

func TestMeritService_Create(t *testing.T) {
	repo := newStubMeritRepo()
	svc := NewMeritService(repo, nil, discardLogger, WithClock(tickingClock()))

	m, err := svc.Create(context.Background(), "alice", domain.MeritInput{Name: "Allies", Rating: 2, Prerequisites: "none"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == "" || m.UserID != "alice" || m.CreatedAt.IsZero() {
		t.Fatalf("unexpected merit: %+v", m)
	}
}

func TestMeritService_Create_Validation(t *testing.T) {
	svc := NewMeritService(newStubMeritRepo(), nil, discardLogger)

	if _, err := svc.Create(context.Background(), "alice", domain.MeritInput{Rating: 1}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("missing name: expected ErrValidation, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "alice", domain.MeritInput{Name: "Allies"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("missing rating: expected ErrValidation, got %v", err)
	}
}

func TestMeritService_Create_DuplicateName(t *testing.T) {
	svc := NewMeritService(newStubMeritRepo(), nil, discardLogger)
	ctx := context.Background()

	_, _ = svc.Create(ctx, "alice", domain.MeritInput{Name: "Allies", Rating: 1})
	_, err := svc.Create(ctx, "bob", domain.MeritInput{Name: "Allies", Rating: 3})
	if !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	if errors.Is(err, domain.ErrValidation) {
		t.Fatal("duplicate name must be distinct from validation failure")
	}
}

func TestMeritService_List_GlobalAndCached(t *testing.T) {
	repo := newStubMeritRepo()
	cache := &stubMeritCache{}
	svc := NewMeritService(repo, cache, discardLogger)
	ctx := context.Background()

	_, _ = svc.Create(ctx, "alice", domain.MeritInput{Name: "Resources", Rating: 2})
	_, _ = svc.Create(ctx, "bob", domain.MeritInput{Name: "Allies", Rating: 1})

	first, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) != 2 || first[0].Name != "Allies" {
		t.Fatalf("expected both merits ordered by name, got %+v", first)
	}

	_, _ = svc.List(ctx)
	if repo.listCalls != 1 {
		t.Errorf("second list must be served from cache, repo called %d times", repo.listCalls)
	}

	_, _ = svc.Create(ctx, "bob", domain.MeritInput{Name: "Contacts", Rating: 1})
	third, _ := svc.List(ctx)
	if len(third) != 3 || repo.listCalls != 2 {
		t.Errorf("create must invalidate the cache: len=%d calls=%d", len(third), repo.listCalls)
	}
}

func TestMeritService_List_CacheFailureFallsBack(t *testing.T) {
	repo := newStubMeritRepo()
	cache := &stubMeritCache{getErr: errors.New("redis down")}
	svc := NewMeritService(repo, cache, discardLogger)

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if repo.listCalls != 1 {
		t.Errorf("expected store read, got %d", repo.listCalls)
	}
}

func TestMeritService_Replace_OwnerScoped(t *testing.T) {
	repo := newStubMeritRepo()
	cache := &stubMeritCache{}
	svc := NewMeritService(repo, cache, discardLogger)
	ctx := context.Background()

	m, _ := svc.Create(ctx, "alice", domain.MeritInput{Name: "Allies", Rating: 1})

	if _, err := svc.Replace(ctx, "bob", m.ID, domain.MeritInput{Name: "Hijacked", Rating: 5}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}

	updated, err := svc.Replace(ctx, "alice", m.ID, domain.MeritInput{Name: "Allies", Rating: 3})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if updated.Rating != 3 {
		t.Errorf("expected rating 3, got %d", updated.Rating)
	}
	if cache.invalidated != 2 {
		t.Errorf("expected invalidation on create and replace, got %d", cache.invalidated)
	}
}

func TestMeritService_Delete(t *testing.T) {
	repo := newStubMeritRepo()
	svc := NewMeritService(repo, nil, discardLogger)
	ctx := context.Background()

	m, _ := svc.Create(ctx, "alice", domain.MeritInput{Name: "Allies", Rating: 1})

	if err := svc.Delete(ctx, "bob", m.ID); err != nil {
		t.Fatalf("non-owner delete: %v", err)
	}
	if _, err := svc.Get(ctx, m.ID); err != nil {
		t.Fatalf("merit must survive non-owner delete: %v", err)
	}
	if err := svc.Delete(ctx, "alice", m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "alice", m.ID); err != nil {
		t.Fatalf("repeat delete must succeed: %v", err)
	}
	if err := svc.Delete(ctx, "alice", "bad"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for malformed id, got %v", err)
	}
}
