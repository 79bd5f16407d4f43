package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/platform/logger"
	"github.com/pacificaway/pacificaway-api/internal/redact"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

// CategoryService manages the shared category list. Categories have no
// owner; names are unique and a collision is reported as store.ErrDuplicate.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name string, description *string) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, changes domain.CategoryChanges) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	categories store.CategoryStore
	schema     SchemaEnsurer
	logger     *slog.Logger
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(categories store.CategoryStore, schema SchemaEnsurer, log *slog.Logger) CategoryService {
	if categories == nil || schema == nil {
		panic("category service dependencies cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &categoryService{
		categories: categories,
		schema:     schema,
		logger:     log.With("component", "category_service"),
	}
}

var _ CategoryService = (*categoryService)(nil)

func (s *categoryService) List(ctx context.Context) ([]domain.Category, error) {
	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return nil, wrap("ensure catalog schema", err)
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list categories",
			"error", redact.Error(err))
		return nil, wrap("list categories", err)
	}
	return categories, nil
}

func (s *categoryService) Create(ctx context.Context, name string, description *string) (*domain.Category, error) {
	name = domain.NormalizeName(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return nil, wrap("ensure catalog schema", err)
	}

	category, err := s.categories.Create(ctx, name, description)
	if err != nil {
		s.logFailure(ctx, "create", err)
		return nil, wrap("create category", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("category created",
		"category_id", category.ID)
	return category, nil
}

func (s *categoryService) Update(
	ctx context.Context,
	id uuid.UUID,
	changes domain.CategoryChanges,
) (*domain.Category, error) {
	changes, err := changes.Normalize()
	if err != nil {
		return nil, err
	}

	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return nil, wrap("ensure catalog schema", err)
	}

	category, err := s.categories.Update(ctx, id, changes)
	if err != nil {
		s.logFailure(ctx, "update", err)
		return nil, wrap("update category", err)
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return wrap("ensure catalog schema", err)
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		s.logFailure(ctx, "delete", err)
		return wrap("delete category", err)
	}
	return nil
}

// logFailure keeps expected outcomes (conflicts, misses) at debug level.
func (s *categoryService) logFailure(ctx context.Context, op string, err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if store.IsDuplicateError(err) || store.IsNotFoundError(err) {
		log.Debug("category "+op+" rejected", "reason", err.Error())
		return
	}
	log.Error("failed to "+op+" category", "error", redact.Error(err))
}
