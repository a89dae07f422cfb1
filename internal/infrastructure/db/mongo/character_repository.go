package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

const collectionCharacters = "characters"

// CharacterRepository stores sheets in the characters collection. Every
// single-record operation filters on both _id and userId so records owned by
// someone else are indistinguishable from missing ones.
type CharacterRepository struct {
	col *mongo.Collection
}

func NewCharacterRepository(db *mongo.Database) *CharacterRepository {
	return &CharacterRepository{col: db.Collection(collectionCharacters)}
}

type characterDocument struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID primitive.ObjectID `bson:"userId"`

	Name      string `bson:"name"`
	Age       string `bson:"age"`
	Player    string `bson:"player"`
	Virtue    string `bson:"virtue"`
	Vice      string `bson:"vice"`
	Concept   string `bson:"concept"`
	Chronicle string `bson:"chronicle"`
	Faction   string `bson:"faction"`
	Group     string `bson:"group"`

	Attributes  domain.Attributes       `bson:"attributes"`
	Skills      domain.Skills           `bson:"skills"`
	Merits      []domain.CharacterMerit `bson:"merits"`
	CombatBlock domain.CombatBlock      `bson:"combatBlock"`
	Health      domain.Health           `bson:"health"`
	Willpower   domain.Willpower        `bson:"willpower"`
	Integrity   int                     `bson:"integrity"`
	Conditions  []string                `bson:"conditions"`
	Aspirations []string                `bson:"aspirations"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func toCharacterDocument(c *domain.Character, owner primitive.ObjectID) characterDocument {
	return characterDocument{
		UserID:      owner,
		Name:        c.Name,
		Age:         c.Age,
		Player:      c.Player,
		Virtue:      c.Virtue,
		Vice:        c.Vice,
		Concept:     c.Concept,
		Chronicle:   c.Chronicle,
		Faction:     c.Faction,
		Group:       c.Group,
		Attributes:  c.Attributes,
		Skills:      c.Skills,
		Merits:      c.Merits,
		CombatBlock: c.CombatBlock,
		Health:      c.Health,
		Willpower:   c.Willpower,
		Integrity:   c.Integrity,
		Conditions:  c.Conditions,
		Aspirations: c.Aspirations,
		CreatedAt:   c.CreatedAt.Truncate(time.Millisecond),
		UpdatedAt:   c.UpdatedAt.Truncate(time.Millisecond),
	}
}

func (d characterDocument) toDomain() domain.Character {
	c := domain.Character{
		ID:          d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		Name:        d.Name,
		Age:         d.Age,
		Player:      d.Player,
		Virtue:      d.Virtue,
		Vice:        d.Vice,
		Concept:     d.Concept,
		Chronicle:   d.Chronicle,
		Faction:     d.Faction,
		Group:       d.Group,
		Attributes:  d.Attributes,
		Skills:      d.Skills,
		Merits:      d.Merits,
		CombatBlock: d.CombatBlock,
		Health:      d.Health,
		Willpower:   d.Willpower,
		Integrity:   d.Integrity,
		Conditions:  d.Conditions,
		Aspirations: d.Aspirations,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	if c.Merits == nil {
		c.Merits = []domain.CharacterMerit{}
	}
	if c.Conditions == nil {
		c.Conditions = []string{}
	}
	if c.Aspirations == nil {
		c.Aspirations = []string{}
	}
	return c
}

func (r *CharacterRepository) List(ctx context.Context, userID string) ([]domain.Character, error) {
	owner, err := ownerID(userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"userId": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("find characters: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []characterDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode characters: %w", err)
	}

	result := make([]domain.Character, 0, len(docs))
	for _, d := range docs {
		result = append(result, d.toDomain())
	}
	return result, nil
}

func (r *CharacterRepository) Get(ctx context.Context, userID, id string) (*domain.Character, error) {
	filter, err := scoped(userID, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc characterDocument
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find character: %w", err)
	}
	c := doc.toDomain()
	return &c, nil
}

func (r *CharacterRepository) Create(ctx context.Context, c *domain.Character) (*domain.Character, error) {
	owner, err := ownerID(c.UserID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toCharacterDocument(c, owner)
	doc.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert character: %w", err)
	}

	created := doc.toDomain()
	return &created, nil
}

// Update sets only the supplied fields plus updatedAt and returns the
// document as stored afterwards.
func (r *CharacterRepository) Update(ctx context.Context, userID, id string, fields domain.CharacterFields, updatedAt time.Time) (*domain.Character, error) {
	filter, err := scoped(userID, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	for path, value := range fields.Changes() {
		set[path] = value
	}
	set["updatedAt"] = updatedAt.Truncate(time.Millisecond)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc characterDocument
	if err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update character: %w", err)
	}
	c := doc.toDomain()
	return &c, nil
}

// Delete removes the character when the caller owns it. Zero deleted
// documents is not an error.
func (r *CharacterRepository) Delete(ctx context.Context, userID, id string) error {
	filter, err := scoped(userID, id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("delete character: %w", err)
	}
	return nil
}
