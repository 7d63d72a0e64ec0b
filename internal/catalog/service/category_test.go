package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"wanderbook/internal/availability"
	catalogerrors "wanderbook/internal/catalog/errors"
	"wanderbook/internal/catalog/validator"
	"wanderbook/pkg/config"
	apperrors "wanderbook/pkg/errors"
	"wanderbook/pkg/logger"
	"wanderbook/pkg/model"

	"github.com/shopspring/decimal"
)

// ────────────────────────────────────────────────
// In-memory repository with the store's append semantics
// ────────────────────────────────────────────────

type memoryCategoryRepository struct {
	mu         sync.Mutex
	nextID     int
	categories map[string]*model.OptionCategory
	deleteFunc func(ctx context.Context, id string) error
	findErr    error
}

func newMemoryRepo() *memoryCategoryRepository {
	return &memoryCategoryRepository{categories: map[string]*model.OptionCategory{}}
}

func (m *memoryCategoryRepository) UpsertOptions(ctx context.Context, name string, opts []model.Option) (*model.OptionCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.categories {
		if c.Name == name {
			c.Options = append(c.Options, opts...)
			out := *c
			return &out, nil
		}
	}
	m.nextID++
	c := &model.OptionCategory{ID: fmt.Sprintf("c%d", m.nextID), Name: name, Options: append([]model.Option{}, opts...)}
	m.categories[c.ID] = c
	out := *c
	return &out, nil
}

func (m *memoryCategoryRepository) FindAll(ctx context.Context) ([]*model.OptionCategory, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*model.OptionCategory, 0, len(m.categories))
	for _, c := range m.categories {
		cp := *c
		cp.Options = append([]model.Option{}, c.Options...)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryCategoryRepository) FindByID(ctx context.Context, id string) (*model.OptionCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return nil, catalogerrors.ErrNotFound
	}
	return c, nil
}

func (m *memoryCategoryRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return catalogerrors.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

type staticFinder map[string]model.Resource

func (f staticFinder) FindByIDs(ctx context.Context, ids []string) (map[string]model.Resource, error) {
	out := make(map[string]model.Resource)
	for _, id := range ids {
		if r, ok := f[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

func newTestService(repo *memoryCategoryRepository, finders map[model.ResourceKind]availability.ResourceFinder) CategoryService {
	log := logger.NewNop()
	cfg := &config.Config{Log: log}
	return NewCategoryService(repo, validator.NewCategoryValidator(log), availability.NewResolver(finders, log), cfg)
}

const (
	vanID          = "64b7f0c2e4b0a1a2b3c4d501"
	jeepID         = "64b7f0c2e4b0a1a2b3c4d502"
	serenaID       = "64b7f0c2e4b0a1a2b3c4d511"
	hiltonID       = "64b7f0c2e4b0a1a2b3c4d512"
	aminaID        = "64b7f0c2e4b0a1a2b3c4d521"
	missingAgentID = "64b7f0c2e4b0a1a2b3c4d529"
)

func optionInput(name, itemModel, itemID string, price string) model.OptionInput {
	return model.OptionInput{
		Name:      name,
		Price:     decimal.NewNullDecimal(decimal.RequireFromString(price)),
		ItemID:    itemID,
		ItemModel: itemModel,
	}
}

// ────────────────────────────────────────────────
// Tests for UpsertCategoryOptions()
// ────────────────────────────────────────────────

func TestUpsertCategoryOptions_NewCategory(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo, map[model.ResourceKind]availability.ResourceFinder{
		model.ResourceVehicle: staticFinder{
			vanID: model.Vehicle{ID: vanID, Type: "Van", Model: "Hiace", Status: model.StatusAvailable},
			jeepID: model.Vehicle{ID: jeepID, Type: "Jeep", Model: "Wrangler", Status: model.StatusAvailable},
		},
	})

	category, err := svc.UpsertCategoryOptions(context.Background(), &model.CategoryOptionsInput{
		Name: "  Vehicles  ",
		Options: []model.OptionInput{
			optionInput("Van", "Vehicle", vanID, "120"),
			optionInput("Jeep", "Vehicle", jeepID, "90.5"),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.Name != "Vehicles" {
		t.Errorf("expected trimmed name, got %q", category.Name)
	}
	if len(category.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(category.Options))
	}
	for _, opt := range category.Options {
		if opt.ID == "" {
			t.Error("expected option id to be assigned")
		}
		if !opt.IsAvailable {
			t.Error("expected isAvailable to default to true")
		}
	}
	if category.Options[1].Price != 90.5 {
		t.Errorf("expected price 90.5, got %v", category.Options[1].Price)
	}

	listed, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 || len(listed[0].Options) != 2 {
		t.Fatalf("expected listed category with 2 options, got %+v", listed)
	}
}

func TestUpsertCategoryOptions_AppendsWithoutDedup(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo, nil)

	first := &model.CategoryOptionsInput{
		Name:    "Hotels",
		Options: []model.OptionInput{optionInput("Serena", "Hotel", serenaID, "100")},
	}
	if _, err := svc.UpsertCategoryOptions(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := &model.CategoryOptionsInput{
		Name: "Hotels",
		Options: []model.OptionInput{
			optionInput("Serena", "Hotel", serenaID, "100"),
			optionInput("Hilton", "Hotel", hiltonID, "200"),
		},
	}
	category, err := svc.UpsertCategoryOptions(context.Background(), second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(category.Options) != 3 {
		t.Errorf("expected 3 options after append, got %d", len(category.Options))
	}
	if len(repo.categories) != 1 {
		t.Errorf("expected a single category, got %d", len(repo.categories))
	}
}

func TestUpsertCategoryOptions_RespectsExplicitUnavailable(t *testing.T) {
	svc := newTestService(newMemoryRepo(), nil)

	unavailable := false
	opt := optionInput("Van", "Vehicle", vanID, "10")
	opt.IsAvailable = &unavailable

	category, err := svc.UpsertCategoryOptions(context.Background(), &model.CategoryOptionsInput{
		Name:    "Vehicles",
		Options: []model.OptionInput{opt},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.Options[0].IsAvailable {
		t.Error("expected explicit isAvailable=false to be kept")
	}
}

func TestUpsertCategoryOptions_CanonicalItemID(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo, map[model.ResourceKind]availability.ResourceFinder{
		model.ResourceVehicle: staticFinder{
			vanID: model.Vehicle{ID: vanID, Type: "Van", Model: "Hiace", Status: model.StatusAvailable},
		},
	})

	category, err := svc.UpsertCategoryOptions(context.Background(), &model.CategoryOptionsInput{
		Name:    "Vehicles",
		Options: []model.OptionInput{optionInput("Van", "Vehicle", " 64B7F0C2E4B0A1A2B3C4D501 ", "120")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.Options[0].ItemID != vanID {
		t.Errorf("expected lowercase item id %q, got %q", vanID, category.Options[0].ItemID)
	}

	listed, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed[0].Options) != 1 {
		t.Errorf("expected the option to resolve against its vehicle, got %+v", listed[0].Options)
	}
}

func TestUpsertCategoryOptions_ValidationErrors(t *testing.T) {
	svc := newTestService(newMemoryRepo(), nil)

	tests := []struct {
		name  string
		input *model.CategoryOptionsInput
	}{
		{"blank name", &model.CategoryOptionsInput{Name: "   ", Options: []model.OptionInput{optionInput("Van", "Vehicle", vanID, "1")}}},
		{"no options", &model.CategoryOptionsInput{Name: "Vehicles"}},
		{"negative price", &model.CategoryOptionsInput{Name: "Vehicles", Options: []model.OptionInput{optionInput("Van", "Vehicle", vanID, "-5")}}},
		{"malformed item id", &model.CategoryOptionsInput{Name: "Vehicles", Options: []model.OptionInput{optionInput("Van", "Vehicle", "not-an-object-id", "5")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpsertCategoryOptions(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodeValidation || appErr.HTTPStatus != 400 {
				t.Errorf("expected 400 validation error, got %v", appErr)
			}
		})
	}
}

// ────────────────────────────────────────────────
// Tests for ListCategories() / ListRawCategories()
// ────────────────────────────────────────────────

func TestListCategories_UnresolvedOptionOnlyInRawView(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo, map[model.ResourceKind]availability.ResourceFinder{
		model.ResourceEmployee: staticFinder{
			aminaID: model.Employee{ID: aminaID, Name: "Amina", Position: "Senior agent", Status: model.StatusActive},
		},
	})

	_, err := svc.UpsertCategoryOptions(context.Background(), &model.CategoryOptionsInput{
		Name: "Travel Agents",
		Options: []model.OptionInput{
			optionInput("Agent A", "Employee", aminaID, "50"),
			optionInput("Agent B", "Employee", missingAgentID, "50"),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resolved, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved[0].Options) != 1 {
		t.Fatalf("expected 1 resolved option, got %d", len(resolved[0].Options))
	}
	if resolved[0].Options[0].Name != "Amina" {
		t.Errorf("expected resource name, got %q", resolved[0].Options[0].Name)
	}

	raw, err := svc.ListRawCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw[0].Options) != 2 {
		t.Errorf("expected both options in raw view, got %d", len(raw[0].Options))
	}
	if raw[0].Options[0].Name != "Agent A" {
		t.Errorf("raw view should keep stored names, got %q", raw[0].Options[0].Name)
	}
}

func TestListCategories_SortedByName(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo, nil)

	for _, name := range []string{"Vehicles", "Hotels", "Travel Agents"} {
		_, err := svc.UpsertCategoryOptions(context.Background(), &model.CategoryOptionsInput{
			Name:    name,
			Options: []model.OptionInput{optionInput("x", "Hotel", serenaID, "1")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	categories, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Hotels", "Travel Agents", "Vehicles"}
	for i, c := range categories {
		if c.Name != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], c.Name)
		}
	}
}

func TestListCategories_StoreError(t *testing.T) {
	repo := newMemoryRepo()
	repo.findErr = errors.New("server selection timeout")
	svc := newTestService(repo, nil)

	_, err := svc.ListCategories(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if apperrors.AsAppError(err).HTTPStatus != 500 {
		t.Errorf("expected 500, got %v", err)
	}
}

// ────────────────────────────────────────────────
// Tests for DeleteCategory()
// ────────────────────────────────────────────────

func TestDeleteCategory_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		repoErr    error
		wantStatus int
	}{
		{"empty id", "", nil, 400},
		{"invalid id", "not-an-id", fmt.Errorf("%w: not-an-id", catalogerrors.ErrInvalidID), 400},
		{"not found", "64b7f0c2e4b0a1a2b3c4d5e6", catalogerrors.ErrNotFound, 404},
		{"store failure", "64b7f0c2e4b0a1a2b3c4d5e6", errors.New("connection reset"), 500},
		{"deleted", "64b7f0c2e4b0a1a2b3c4d5e6", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepo()
			repo.deleteFunc = func(ctx context.Context, id string) error {
				return tt.repoErr
			}
			svc := newTestService(repo, nil)

			err := svc.DeleteCategory(context.Background(), tt.id)
			if tt.wantStatus == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperrors.AsAppError(err).HTTPStatus; got != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, got)
			}
		})
	}
}
