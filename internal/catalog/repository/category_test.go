package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	catalogerrors "wanderbook/internal/catalog/errors"
	"wanderbook/pkg/db/mongo/mongotest"
	"wanderbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newOption(name string) model.Option {
	return model.Option{
		ID:          primitive.NewObjectID().Hex(),
		Name:        name,
		Price:       100,
		IsAvailable: true,
		ItemID:      primitive.NewObjectID().Hex(),
		ItemModel:   model.ResourceHotel,
	}
}

func newTestRepository(t *testing.T) CategoryRepository {
	t.Helper()
	cfg := mongotest.NewConfig(t)

	_, err := mongotest.Collection(cfg, CollectionName).Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		t.Fatalf("failed to create name index: %v", err)
	}
	return NewMongoCategoryRepository(cfg)
}

func TestMongoCategoryRepository_UpsertAppends(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	serena := newOption("Serena")
	created, err := repo.UpsertOptions(ctx, "Hotels", []model.Option{serena})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" || created.Name != "Hotels" || len(created.Options) != 1 {
		t.Fatalf("unexpected created category %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set on insert")
	}

	again, err := repo.UpsertOptions(ctx, "Hotels", []model.Option{serena, newOption("Hilton")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.ID != created.ID {
		t.Errorf("expected the same category, got %s and %s", created.ID, again.ID)
	}
	if len(again.Options) != 3 {
		t.Errorf("expected 3 options with the repeated one kept, got %d", len(again.Options))
	}
	if again.Options[0].ID != serena.ID || again.Options[1].ID != serena.ID {
		t.Errorf("expected submission order to be kept, got %+v", again.Options)
	}
	if !again.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("createdAt changed on append: %v -> %v", created.CreatedAt, again.CreatedAt)
	}
	if again.UpdatedAt.Before(created.UpdatedAt) {
		t.Errorf("updatedAt went backwards: %v -> %v", created.UpdatedAt, again.UpdatedAt)
	}
}

func TestMongoCategoryRepository_ConcurrentFirstInsert(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.UpsertOptions(ctx, "Vehicles", []model.Option{newOption(fmt.Sprintf("Van %d", i))})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	categories, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("expected a single category, got %d", len(categories))
	}
	if len(categories[0].Options) != writers {
		t.Errorf("expected %d options, got %d", writers, len(categories[0].Options))
	}
}

func TestMongoCategoryRepository_FindAllSortedByName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, name := range []string{"Vehicles", "Hotels", "Travel Agents"} {
		if _, err := repo.UpsertOptions(ctx, name, []model.Option{newOption("x")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	categories, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Hotels", "Travel Agents", "Vehicles"}
	if len(categories) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(categories))
	}
	for i, c := range categories {
		if c.Name != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], c.Name)
		}
	}
}

func TestMongoCategoryRepository_FindByIDAndDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.UpsertOptions(ctx, "Hotels", []model.Option{newOption("Serena")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Hotels" || len(found.Options) != 1 {
		t.Errorf("unexpected category %+v", found)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"deleted", created.ID, catalogerrors.ErrNotFound},
		{"never existed", primitive.NewObjectID().Hex(), catalogerrors.ErrNotFound},
		{"malformed", "not-an-id", catalogerrors.ErrInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := repo.FindByID(ctx, tt.id); !errors.Is(err, tt.wantErr) {
				t.Errorf("FindByID: expected %v, got %v", tt.wantErr, err)
			}
			if err := repo.Delete(ctx, tt.id); !errors.Is(err, tt.wantErr) {
				t.Errorf("Delete: expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
