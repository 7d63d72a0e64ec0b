// Package mongotest connects repository tests to a real MongoDB. Tests using
// it are skipped unless MONGO_URI is set.
package mongotest

import (
	"context"
	"os"
	"testing"
	"time"

	"wanderbook/pkg/client"
	"wanderbook/pkg/config"
	"wanderbook/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EnvMongoURI       = "MONGO_URI"
	ConnectionTimeout = 10 * time.Second
	OperationTimeout  = 5 * time.Second
)

// NewConfig returns a config whose Mongo client points at a throwaway
// database. The database is dropped when the test finishes.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()

	mongoURI := os.Getenv(EnvMongoURI)
	if mongoURI == "" {
		t.Skipf("%s not set, skipping MongoDB test", EnvMongoURI)
	}

	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		t.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		t.Fatalf("failed to ping MongoDB: %v", err)
	}

	dbName := "wanderbook_test_" + primitive.NewObjectID().Hex()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
		defer cancel()
		if err := mongoClient.Database(dbName).Drop(ctx); err != nil {
			t.Logf("warning: failed to drop test database %s: %v", dbName, err)
		}
		if err := mongoClient.Disconnect(ctx); err != nil {
			t.Logf("warning: failed to disconnect from MongoDB: %v", err)
		}
	})

	cfg := &config.Config{
		MongoDatabaseName: dbName,
		ReadTimeout:       OperationTimeout,
		WriteTimeout:      OperationTimeout,
		Log:               logger.NewNop(),
		Client:            client.NewClient(),
	}
	cfg.Client.Mongo = mongoClient
	return cfg
}

// Collection returns collectionName in the test database.
func Collection(cfg *config.Config, collectionName string) *mongo.Collection {
	return cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(collectionName)
}

// Insert stores doc and returns its generated id as hex.
func Insert(t *testing.T, cfg *config.Config, collectionName string, doc any) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), OperationTimeout)
	defer cancel()

	result, err := Collection(cfg, collectionName).InsertOne(ctx, doc)
	if err != nil {
		t.Fatalf("failed to insert into %s: %v", collectionName, err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		t.Fatalf("expected generated ObjectID, got %T", result.InsertedID)
	}
	return oid.Hex()
}
