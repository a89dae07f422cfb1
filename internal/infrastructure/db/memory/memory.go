// Package memory provides process-local repositories with the same ownership
// and uniqueness rules as the MongoDB adapters. It backs STORAGE=memory and
// the HTTP end-to-end tests.
package memory

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

// Store owns the data shared by the in-memory repositories.
type Store struct {
	mu         sync.RWMutex
	users      map[string]domain.User
	characters map[string]domain.Character
	merits     map[string]domain.Merit
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]domain.User),
		characters: make(map[string]domain.Character),
		merits:     make(map[string]domain.Merit),
	}
}

func (s *Store) Users() *UserRepository { return &UserRepository{store: s} }

func (s *Store) Characters() *CharacterRepository { return &CharacterRepository{store: s} }

func (s *Store) Merits() *MeritRepository { return &MeritRepository{store: s} }

// newID issues ids in the same format MongoDB does so that clients cannot
// tell the backends apart.
func newID() string {
	return primitive.NewObjectID().Hex()
}

func checkID(id string) error {
	if !primitive.IsValidObjectID(id) {
		return domain.ErrInvalidID
	}
	return nil
}

func checkOwner(userID string) error {
	if !primitive.IsValidObjectID(userID) {
		return domain.ErrUnauthenticated
	}
	return nil
}
