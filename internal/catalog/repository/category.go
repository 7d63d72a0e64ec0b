package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogerrors "wanderbook/internal/catalog/errors"
	"wanderbook/pkg/config"
	mongodb "wanderbook/pkg/db/mongo"
	"wanderbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "option_categories"
)

type CategoryRepository interface {
	UpsertOptions(ctx context.Context, name string, opts []model.Option) (*model.OptionCategory, error)
	FindAll(ctx context.Context) ([]*model.OptionCategory, error)
	FindByID(ctx context.Context, id string) (*model.OptionCategory, error)
	Delete(ctx context.Context, id string) error
}

type mongoCategoryRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoCategoryRepository(cfg *config.Config) CategoryRepository {
	return &mongoCategoryRepository{
		cfg:        cfg,
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(CollectionName),
	}
}

// UpsertOptions appends opts to the category called name, creating the
// category when it does not exist yet, in one atomic round trip. Two
// concurrent first inserts race on the unique name index; the loser is
// retried once and then lands on the append path.
func (r *mongoCategoryRepository) UpsertOptions(ctx context.Context, name string, opts []model.Option) (*model.OptionCategory, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	category, err := r.upsertOptions(ctx, name, opts)
	if mongodb.IsDuplicateKey(err) {
		category, err = r.upsertOptions(ctx, name, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert options for category %q: %w", name, err)
	}
	return category, nil
}

func (r *mongoCategoryRepository) upsertOptions(ctx context.Context, name string, opts []model.Option) (*model.OptionCategory, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)

	filter := bson.M{"name": name}
	update := bson.M{
		"$push":        bson.M{"options": bson.M{"$each": opts}},
		"$setOnInsert": bson.M{"createdAt": now},
		"$set":         bson.M{"updatedAt": now},
	}
	findOpts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var category model.OptionCategory
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, findOpts).Decode(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *mongoCategoryRepository) FindAll(ctx context.Context) ([]*model.OptionCategory, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find option categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []*model.OptionCategory{}
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode option categories: %w", err)
	}

	return categories, nil
}

func (r *mongoCategoryRepository) FindByID(ctx context.Context, id string) (*model.OptionCategory, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", catalogerrors.ErrInvalidID, id)
	}

	var category model.OptionCategory
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, catalogerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find option category: %w", err)
	}

	return &category, nil
}

func (r *mongoCategoryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", catalogerrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete option category: %w", err)
	}

	if result.DeletedCount == 0 {
		return catalogerrors.ErrNotFound
	}

	return nil
}
