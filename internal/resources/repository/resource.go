package repository

import (
	"context"
	"fmt"
	"time"

	mongodb "wanderbook/pkg/db/mongo"
	"wanderbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EmployeesCollection = "employees"
	HotelsCollection    = "hotels"
	VehiclesCollection  = "vehicles"
)

// ResourceFinder resolves a batch of ids of one kind. Ids that are malformed
// or missing are simply absent from the result.
type ResourceFinder interface {
	FindByIDs(ctx context.Context, ids []string) (map[string]model.Resource, error)
}

func findByIDs[T model.Resource](
	ctx context.Context,
	coll *mongo.Collection,
	timeout time.Duration,
	ids []string,
	idOf func(T) string,
) (map[string]model.Resource, error) {
	found := make(map[string]model.Resource, len(ids))

	oids, _ := mongodb.ObjectIDs(ids)
	if len(oids) == 0 {
		return found, nil
	}

	ctx, cancel := mongodb.WithTimeout(ctx, timeout)
	defer cancel()

	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}

	for _, doc := range docs {
		found[idOf(doc)] = doc
	}
	return found, nil
}

func findMany[T any](
	ctx context.Context,
	coll *mongo.Collection,
	timeout time.Duration,
	filter bson.M,
	sort bson.D,
) ([]T, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, timeout)
	defer cancel()

	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return docs, nil
}
