package availability

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"wanderbook/pkg/logger"
	"wanderbook/pkg/model"
)

type mockFinder struct {
	findByIDsFunc func(ctx context.Context, ids []string) (map[string]model.Resource, error)
	calls         atomic.Int32
}

func (m *mockFinder) FindByIDs(ctx context.Context, ids []string) (map[string]model.Resource, error) {
	m.calls.Add(1)
	if m.findByIDsFunc != nil {
		return m.findByIDsFunc(ctx, ids)
	}
	return map[string]model.Resource{}, nil
}

func staticFinder(resources map[string]model.Resource) *mockFinder {
	return &mockFinder{
		findByIDsFunc: func(ctx context.Context, ids []string) (map[string]model.Resource, error) {
			out := make(map[string]model.Resource)
			for _, id := range ids {
				if r, ok := resources[id]; ok {
					out[id] = r
				}
			}
			return out, nil
		},
	}
}

func option(id, name string, kind model.ResourceKind, itemID string, available bool) model.Option {
	return model.Option{
		ID:          id,
		Name:        name,
		Description: "stored description",
		Price:       100,
		IsAvailable: available,
		ItemID:      itemID,
		ItemModel:   kind,
	}
}

func TestResolve_FiltersOptions(t *testing.T) {
	hotels := staticFinder(map[string]model.Resource{
		"h1": model.Hotel{ID: "h1", Name: "Serena", Description: "Lakeside"},
		"h2": model.Hotel{ID: "h2", Name: "Closed Inn", Status: model.StatusInactive},
	})
	vehicles := staticFinder(map[string]model.Resource{
		"v1": model.Vehicle{ID: "v1", VehicleID: "KBX-1", Type: "Van", Model: "Hiace", Seats: 9, Status: model.StatusAvailable},
		"v2": model.Vehicle{ID: "v2", VehicleID: "KBX-2", Type: "Jeep", Status: model.StatusMaintenance},
	})

	resolver := NewResolver(map[model.ResourceKind]ResourceFinder{
		model.ResourceHotel:   hotels,
		model.ResourceVehicle: vehicles,
	}, logger.NewNop())

	categories := []*model.OptionCategory{
		{
			ID:   "c1",
			Name: "Accommodation",
			Options: []model.Option{
				option("o1", "old hotel name", model.ResourceHotel, "h1", true),
				option("o2", "inactive hotel", model.ResourceHotel, "h2", true),
				option("o3", "missing hotel", model.ResourceHotel, "h404", true),
				option("o4", "unavailable flag", model.ResourceHotel, "h1", false),
			},
		},
		{
			ID:   "c2",
			Name: "Transport",
			Options: []model.Option{
				option("o5", "van", model.ResourceVehicle, "v1", true),
				option("o6", "jeep", model.ResourceVehicle, "v2", true),
			},
		},
	}

	resolved, err := resolver.Resolve(context.Background(), categories)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(resolved))
	}

	accommodation := resolved[0].Options
	if len(accommodation) != 1 || accommodation[0].ID != "o1" {
		t.Fatalf("expected only o1 in accommodation, got %+v", accommodation)
	}
	if accommodation[0].Name != "Serena" || accommodation[0].Description != "Lakeside" {
		t.Errorf("expected resource name and description, got %q / %q", accommodation[0].Name, accommodation[0].Description)
	}
	if accommodation[0].Price != 100 {
		t.Errorf("price should be kept from the option, got %v", accommodation[0].Price)
	}

	transport := resolved[1].Options
	if len(transport) != 1 || transport[0].ID != "o5" {
		t.Fatalf("expected only o5 in transport, got %+v", transport)
	}
	if transport[0].Name != "Van Hiace" {
		t.Errorf("expected vehicle display name, got %q", transport[0].Name)
	}

	if hotels.calls.Load() != 1 || vehicles.calls.Load() != 1 {
		t.Errorf("expected one batched lookup per kind, got hotels=%d vehicles=%d", hotels.calls.Load(), vehicles.calls.Load())
	}
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	resolver := NewResolver(map[model.ResourceKind]ResourceFinder{
		model.ResourceEmployee: staticFinder(map[string]model.Resource{
			"e1": model.Employee{ID: "e1", Name: "Amina", Position: "Guide"},
		}),
	}, logger.NewNop())

	categories := []*model.OptionCategory{{
		ID:   "c1",
		Name: "Guides",
		Options: []model.Option{
			option("o1", "stored", model.ResourceEmployee, "e1", true),
			option("o2", "gone", model.ResourceEmployee, "e2", true),
		},
	}}

	if _, err := resolver.Resolve(context.Background(), categories); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(categories[0].Options) != 2 {
		t.Errorf("input options changed: %+v", categories[0].Options)
	}
	if categories[0].Options[0].Name != "stored" {
		t.Errorf("input option renamed to %q", categories[0].Options[0].Name)
	}
}

func TestResolve_KeepsEmptyCategories(t *testing.T) {
	resolver := NewResolver(map[model.ResourceKind]ResourceFinder{
		model.ResourceHotel: staticFinder(nil),
	}, logger.NewNop())

	resolved, err := resolver.Resolve(context.Background(), []*model.OptionCategory{{
		ID:      "c1",
		Name:    "Accommodation",
		Options: []model.Option{option("o1", "x", model.ResourceHotel, "h1", true)},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("expected category to be kept, got %d", len(resolved))
	}
	if resolved[0].Options == nil || len(resolved[0].Options) != 0 {
		t.Errorf("expected empty non-nil option list, got %#v", resolved[0].Options)
	}
}

func TestResolve_UnknownKindDropsOption(t *testing.T) {
	resolver := NewResolver(map[model.ResourceKind]ResourceFinder{}, logger.NewNop())

	resolved, err := resolver.Resolve(context.Background(), []*model.OptionCategory{{
		ID:      "c1",
		Name:    "Misc",
		Options: []model.Option{option("o1", "x", model.ResourceKind("Boat"), "b1", true)},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved[0].Options) != 0 {
		t.Errorf("expected option with unknown kind to be dropped, got %+v", resolved[0].Options)
	}
}

func TestResolve_FinderError(t *testing.T) {
	resolver := NewResolver(map[model.ResourceKind]ResourceFinder{
		model.ResourceHotel: &mockFinder{
			findByIDsFunc: func(ctx context.Context, ids []string) (map[string]model.Resource, error) {
				return nil, errors.New("connection refused")
			},
		},
	}, logger.NewNop())

	_, err := resolver.Resolve(context.Background(), []*model.OptionCategory{{
		ID:      "c1",
		Name:    "Accommodation",
		Options: []model.Option{option("o1", "x", model.ResourceHotel, "h1", true)},
	}})
	if err == nil {
		t.Fatal("expected error when a lookup fails")
	}
}
