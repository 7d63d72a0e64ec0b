package repository

import (
	"context"

	"wanderbook/pkg/config"
	"wanderbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type EmployeeRepository interface {
	ResourceFinder
	FindActive(ctx context.Context) ([]model.Employee, error)
}

type mongoEmployeeRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoEmployeeRepository(cfg *config.Config) EmployeeRepository {
	return &mongoEmployeeRepository{
		cfg:        cfg,
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(EmployeesCollection),
	}
}

func (r *mongoEmployeeRepository) FindByIDs(ctx context.Context, ids []string) (map[string]model.Resource, error) {
	return findByIDs(ctx, r.collection, r.cfg.ReadTimeout, ids, func(e model.Employee) string { return e.ID })
}

// FindActive returns the agents a customer can pick from.
func (r *mongoEmployeeRepository) FindActive(ctx context.Context) ([]model.Employee, error) {
	return findMany[model.Employee](ctx, r.collection, r.cfg.ReadTimeout,
		bson.M{"status": model.StatusActive},
		bson.D{{Key: "name", Value: 1}},
	)
}
