package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithTimeout bounds ctx by timeout, keeping an earlier caller deadline.
// A SessionContext is returned unchanged because wrapping it drops the
// session.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}

	return context.WithTimeout(ctx, timeout)
}

func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// ObjectIDs converts hex ids, returning the malformed ones separately so
// callers can treat them as unresolved instead of failing the whole batch.
func ObjectIDs(ids []string) ([]primitive.ObjectID, []string) {
	seen := make(map[string]struct{}, len(ids))
	valid := make([]primitive.ObjectID, 0, len(ids))
	var invalid []string

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			invalid = append(invalid, id)
			continue
		}
		valid = append(valid, oid)
	}
	return valid, invalid
}
