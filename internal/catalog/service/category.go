package service

import (
	"context"
	"errors"

	catalogerrors "wanderbook/internal/catalog/errors"
	"wanderbook/internal/catalog/repository"
	"wanderbook/internal/catalog/validator"
	"wanderbook/pkg/config"
	apperrors "wanderbook/pkg/errors"
	"wanderbook/pkg/model"
	"wanderbook/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryService interface {
	UpsertCategoryOptions(ctx context.Context, input *model.CategoryOptionsInput) (*model.OptionCategory, error)
	ListCategories(ctx context.Context) ([]*model.OptionCategory, error)
	ListRawCategories(ctx context.Context) ([]*model.OptionCategory, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryResolver narrows stored categories to the options that can be
// booked right now.
type CategoryResolver interface {
	Resolve(ctx context.Context, categories []*model.OptionCategory) ([]*model.OptionCategory, error)
}

type categoryService struct {
	repo      repository.CategoryRepository
	validator *validator.CategoryValidator
	resolver  CategoryResolver
	cfg       *config.Config
}

func NewCategoryService(
	repo repository.CategoryRepository,
	validator *validator.CategoryValidator,
	resolver CategoryResolver,
	cfg *config.Config,
) CategoryService {
	return &categoryService{
		repo:      repo,
		validator: validator,
		resolver:  resolver,
		cfg:       cfg,
	}
}

func (s *categoryService) UpsertCategoryOptions(ctx context.Context, input *model.CategoryOptionsInput) (*model.OptionCategory, error) {
	s.sanitize(input)
	if err := s.validator.Validate(input); err != nil {
		s.cfg.Log.Warn("Option submission validation failed",
			"category", input.Name,
			"error", err,
		)
		return nil, apperrors.Validation("Invalid category options", map[string]any{
			"error": err.Error(),
		})
	}

	options := buildOptions(input.Options)

	category, err := s.repo.UpsertOptions(ctx, input.Name, options)
	if err != nil {
		s.cfg.Log.Error("Failed to upsert category options",
			"category", input.Name,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to save category options", err)
	}

	s.cfg.Log.Info("Category options saved",
		"id", category.ID,
		"category", category.Name,
		"added", len(options),
		"total", len(category.Options),
	)
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*model.OptionCategory, error) {
	categories, err := s.ListRawCategories(ctx)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolver.Resolve(ctx, categories)
	if err != nil {
		s.cfg.Log.Error("Failed to resolve option categories", "error", err)
		return nil, apperrors.Internal("Failed to resolve option categories", err)
	}
	return resolved, nil
}

func (s *categoryService) ListRawCategories(ctx context.Context) ([]*model.OptionCategory, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list option categories", "error", err)
		return nil, apperrors.Internal("Failed to retrieve option categories", err)
	}
	return categories, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Category ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogerrors.ErrInvalidID) {
			return apperrors.InvalidID("category", id)
		}
		if errors.Is(err, catalogerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Category", id)
		}
		s.cfg.Log.Error("Failed to delete option category",
			"id", id,
			"error", err,
		)
		return apperrors.Internal("Failed to delete option category", err)
	}

	s.cfg.Log.Info("Option category deleted", "id", id)
	return nil
}

func (s *categoryService) sanitize(input *model.CategoryOptionsInput) {
	input.Name = sanitizer.NormalizeCategoryName(input.Name)
	for i := range input.Options {
		opt := &input.Options[i]
		opt.Name = sanitizer.NormalizeName(opt.Name)
		opt.Description = sanitizer.NormalizeText(opt.Description)
		opt.ItemID = canonicalItemID(opt.ItemID)
		opt.ItemModel = sanitizer.TrimAndNormalize(opt.ItemModel)
	}
}

// canonicalItemID lowercases a hex object id so it matches the ids the
// resource finders return. Anything else is left for the validator to reject.
func canonicalItemID(id string) string {
	id = sanitizer.TrimAndNormalize(id)
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid.Hex()
	}
	return id
}

func buildOptions(inputs []model.OptionInput) []model.Option {
	options := make([]model.Option, 0, len(inputs))
	for _, in := range inputs {
		isAvailable := true
		if in.IsAvailable != nil {
			isAvailable = *in.IsAvailable
		}
		price, _ := in.Price.Decimal.Float64()

		options = append(options, model.Option{
			ID:          primitive.NewObjectID().Hex(),
			Name:        in.Name,
			Description: in.Description,
			Price:       price,
			IsAvailable: isAvailable,
			ItemID:      in.ItemID,
			ItemModel:   model.ResourceKind(in.ItemModel),
		})
	}
	return options
}
