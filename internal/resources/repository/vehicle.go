package repository

import (
	"context"

	"wanderbook/pkg/config"
	"wanderbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type VehicleRepository interface {
	ResourceFinder
	FindAvailable(ctx context.Context) ([]model.Vehicle, error)
}

type mongoVehicleRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoVehicleRepository(cfg *config.Config) VehicleRepository {
	return &mongoVehicleRepository{
		cfg:        cfg,
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(VehiclesCollection),
	}
}

func (r *mongoVehicleRepository) FindByIDs(ctx context.Context, ids []string) (map[string]model.Resource, error) {
	return findByIDs(ctx, r.collection, r.cfg.ReadTimeout, ids, func(v model.Vehicle) string { return v.ID })
}

func (r *mongoVehicleRepository) FindAvailable(ctx context.Context) ([]model.Vehicle, error) {
	return findMany[model.Vehicle](ctx, r.collection, r.cfg.ReadTimeout,
		bson.M{"status": model.StatusAvailable},
		bson.D{{Key: "vehicleId", Value: 1}},
	)
}
