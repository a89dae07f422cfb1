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

const collectionMerits = "merits"

type MeritRepository struct {
	col *mongo.Collection
}

func NewMeritRepository(db *mongo.Database) *MeritRepository {
	return &MeritRepository{col: db.Collection(collectionMerits)}
}

type meritDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        primitive.ObjectID `bson:"userId"`
	Name          string             `bson:"name"`
	Rating        int                `bson:"rating"`
	Prerequisites string             `bson:"prerequisites"`
	Description   string             `bson:"description"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (d meritDocument) toDomain() domain.Merit {
	return domain.Merit{
		ID:            d.ID.Hex(),
		UserID:        d.UserID.Hex(),
		Name:          d.Name,
		Rating:        d.Rating,
		Prerequisites: d.Prerequisites,
		Description:   d.Description,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

func (r *MeritRepository) List(ctx context.Context) ([]domain.Merit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find merits: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []meritDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode merits: %w", err)
	}

	result := make([]domain.Merit, 0, len(docs))
	for _, d := range docs {
		result = append(result, d.toDomain())
	}
	return result, nil
}

// Get looks a merit up by id alone; the catalog is readable by every user.
func (r *MeritRepository) Get(ctx context.Context, id string) (*domain.Merit, error) {
	oid, err := recordID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc meritDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find merit: %w", err)
	}
	m := doc.toDomain()
	return &m, nil
}

func (r *MeritRepository) Create(ctx context.Context, m *domain.Merit) (*domain.Merit, error) {
	owner, err := ownerID(m.UserID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := meritDocument{
		ID:            primitive.NewObjectID(),
		UserID:        owner,
		Name:          m.Name,
		Rating:        m.Rating,
		Prerequisites: m.Prerequisites,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt.Truncate(time.Millisecond),
		UpdatedAt:     m.UpdatedAt.Truncate(time.Millisecond),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateName
		}
		return nil, fmt.Errorf("insert merit: %w", err)
	}

	created := doc.toDomain()
	return &created, nil
}

// Replace overwrites the writable fields of a merit owned by userID.
func (r *MeritRepository) Replace(ctx context.Context, userID, id string, input domain.MeritInput, updatedAt time.Time) (*domain.Merit, error) {
	filter, err := scoped(userID, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":          input.Name,
		"rating":        input.Rating,
		"prerequisites": input.Prerequisites,
		"description":   input.Description,
		"updatedAt":     updatedAt.Truncate(time.Millisecond),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc meritDocument
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, domain.ErrNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, domain.ErrDuplicateName
		}
		return nil, fmt.Errorf("replace merit: %w", err)
	}
	m := doc.toDomain()
	return &m, nil
}

func (r *MeritRepository) Delete(ctx context.Context, userID, id string) error {
	filter, err := scoped(userID, id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("delete merit: %w", err)
	}
	return nil
}
