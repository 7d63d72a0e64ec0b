package repository

import (
	"context"

	"wanderbook/pkg/config"
	"wanderbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type HotelRepository interface {
	ResourceFinder
	FindOpen(ctx context.Context) ([]model.Hotel, error)
}

type mongoHotelRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoHotelRepository(cfg *config.Config) HotelRepository {
	return &mongoHotelRepository{
		cfg:        cfg,
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(HotelsCollection),
	}
}

func (r *mongoHotelRepository) FindByIDs(ctx context.Context, ids []string) (map[string]model.Resource, error) {
	return findByIDs(ctx, r.collection, r.cfg.ReadTimeout, ids, func(h model.Hotel) string { return h.ID })
}

// FindOpen returns hotels that are not deactivated. Room-level filtering
// happens on the decoded documents because the counts live in two maps.
func (r *mongoHotelRepository) FindOpen(ctx context.Context) ([]model.Hotel, error) {
	return findMany[model.Hotel](ctx, r.collection, r.cfg.ReadTimeout,
		bson.M{"status": bson.M{"$ne": model.StatusInactive}},
		bson.D{{Key: "name", Value: 1}},
	)
}
