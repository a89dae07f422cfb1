package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

// recordID parses a client-supplied document id.
func recordID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

// ownerID parses the caller's user id taken from a verified token. A subject
// that is not an ObjectID cannot own anything.
func ownerID(userID string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, domain.ErrUnauthenticated
	}
	return oid, nil
}

// scoped parses both ids and returns the owner-scoped predicate used by every
// single-record lookup.
func scoped(userID, id string) (primitive.M, error) {
	oid, err := recordID(id)
	if err != nil {
		return nil, err
	}
	owner, err := ownerID(userID)
	if err != nil {
		return nil, err
	}
	return primitive.M{"_id": oid, "userId": owner}, nil
}
