// Package repositories implements the per-collection data access layer.
// Every repository receives its collection handle at construction time;
// nothing here reaches for process-global state.
package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrInvalidID means an identifier is not a well-formed ObjectID. It is
	// raised before any store access.
	ErrInvalidID = errors.New("repositories: invalid id format")

	// ErrNotFound means no document matched the target of a read, update,
	// or delete.
	ErrNotFound = errors.New("repositories: no matching document")
)

// opTimeout bounds every single store operation.
const opTimeout = 10 * time.Second

func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

// parseID validates and converts a hex identifier.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// ParseIDs converts a batch of hex identifiers, failing on the first
// malformed one.
func ParseIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := parseID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}
