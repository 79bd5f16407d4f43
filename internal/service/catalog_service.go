package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/platform/logger"
	"github.com/pacificaway/pacificaway-api/internal/redact"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

// ServiceInput is a client's view of a service. Title and Name are aliases;
// Title wins when both are supplied. CategoryID and Category are the two ways
// of referring to a category (see CategoryResolver).
type ServiceInput struct {
	Title       domain.Optional[string]
	Name        domain.Optional[string]
	Description domain.Optional[string]
	CategoryID  domain.Optional[string]
	Category    domain.Optional[string]
	Price       domain.Optional[float64]
	Active      domain.Optional[bool]
}

// title returns whichever alias carries a usable value, preferring Title.
// A null or blank Title falls back to Name when Name was sent.
func (in ServiceInput) title() domain.Optional[string] {
	if in.Title.HasValue() && strings.TrimSpace(in.Title.Value()) != "" {
		return in.Title
	}
	if in.Name.IsSet() {
		return in.Name
	}
	return in.Title
}

func (in ServiceInput) categoryTouched() bool {
	return in.CategoryID.IsSet() || in.Category.IsSet()
}

func (in ServiceInput) touched() int {
	n := 0
	for _, set := range []bool{
		in.title().IsSet(),
		in.Description.IsSet(),
		in.categoryTouched(),
		in.Price.IsSet(),
		in.Active.IsSet(),
	} {
		if set {
			n++
		}
	}
	return n
}

// changes validates in as an update without touching storage. The category
// is left for CategoryResolver.
func (in ServiceInput) changes() (domain.ServiceChanges, error) {
	changes := domain.ServiceChanges{
		Description: in.Description,
		Price:       in.Price,
		Active:      in.Active,
	}

	if t := in.title(); t.IsSet() {
		title := strings.TrimSpace(t.Value())
		if t.IsNull() || title == "" {
			return domain.ServiceChanges{}, domain.ErrNameRequired
		}
		changes.Title = domain.Some(title)
	}

	if in.touched() == 0 {
		return domain.ServiceChanges{}, domain.ErrNoUpdates
	}
	return changes, nil
}

// ValidateUpdate reports the validation error UpdateService would return
// for in, before any id is resolved.
func (in ServiceInput) ValidateUpdate() error {
	_, err := in.changes()
	return err
}

// ItemInput is a client's view of an item. Nil fields are left unchanged on
// update; there is no way to clear a field.
type ItemInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Active      *bool
}

// CatalogService manages provider-owned services and items. Every write is
// scoped to the acting provider: rows owned by someone else behave as if
// they did not exist.
type CatalogService interface {
	CreateService(ctx context.Context, providerID uuid.UUID, in ServiceInput) (*domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	UpdateService(ctx context.Context, id, providerID uuid.UUID, in ServiceInput) (*domain.Service, error)
	DeleteService(ctx context.Context, id, providerID uuid.UUID) error

	CreateItem(ctx context.Context, providerID uuid.UUID, in ItemInput) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	UpdateItem(ctx context.Context, id, providerID uuid.UUID, in ItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, id, providerID uuid.UUID) error
}

type catalogService struct {
	services store.ServiceStore
	items    store.ItemStore
	resolver *CategoryResolver
	schema   SchemaEnsurer
	logger   *slog.Logger
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(
	services store.ServiceStore,
	items store.ItemStore,
	resolver *CategoryResolver,
	schema SchemaEnsurer,
	log *slog.Logger,
) CatalogService {
	if services == nil || items == nil || resolver == nil || schema == nil {
		panic("catalog service dependencies cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &catalogService{
		services: services,
		items:    items,
		resolver: resolver,
		schema:   schema,
		logger:   log.With("component", "catalog_service"),
	}
}

var _ CatalogService = (*catalogService)(nil)

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

func (s *catalogService) CreateService(
	ctx context.Context,
	providerID uuid.UUID,
	in ServiceInput,
) (*domain.Service, error) {
	title := strings.TrimSpace(in.title().Value())
	if !in.title().HasValue() || title == "" || !in.Price.HasValue() {
		return nil, domain.ErrNameAndPriceMissing
	}

	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return nil, wrap("ensure catalog schema", err)
	}

	category, err := s.resolver.Resolve(ctx, in.CategoryID, in.Category)
	if err != nil {
		return nil, err
	}

	id, err := s.services.Create(ctx, domain.NewService{
		ProviderID:  providerID,
		Title:       title,
		Description: in.Description.Ptr(),
		CategoryID:  category.Ptr(),
		Price:       in.Price.Value(),
	})
	if err != nil {
		s.log(ctx).Error("failed to create service",
			"error", redact.Error(err),
			"provider_id", providerID)
		return nil, wrap("create service", err)
	}

	svc, err := s.services.Get(ctx, id)
	if err != nil {
		return nil, wrap("reload service", err)
	}

	s.log(ctx).Info("service created",
		"service_id", id,
		"provider_id", providerID)
	return svc, nil
}

func (s *catalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return nil, wrap("ensure catalog schema", err)
	}
	services, err := s.services.List(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list services", "error", redact.Error(err))
		return nil, wrap("list services", err)
	}
	return services, nil
}

func (s *catalogService) UpdateService(
	ctx context.Context,
	id, providerID uuid.UUID,
	in ServiceInput,
) (*domain.Service, error) {
	changes, err := in.changes()
	if err != nil {
		return nil, err
	}

	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return nil, wrap("ensure catalog schema", err)
	}

	category, err := s.resolver.Resolve(ctx, in.CategoryID, in.Category)
	if err != nil {
		return nil, err
	}
	changes.CategoryID = category

	if err := s.services.Update(ctx, id, providerID, changes); err != nil {
		if store.IsNotFoundError(err) {
			s.log(ctx).Debug("service not found or not owned",
				"service_id", id,
				"provider_id", providerID)
		} else {
			s.log(ctx).Error("failed to update service",
				"error", redact.Error(err),
				"service_id", id)
		}
		return nil, wrap("update service", err)
	}

	svc, err := s.services.Get(ctx, id)
	if err != nil {
		return nil, wrap("reload service", err)
	}
	return svc, nil
}

func (s *catalogService) DeleteService(ctx context.Context, id, providerID uuid.UUID) error {
	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return wrap("ensure catalog schema", err)
	}
	if err := s.services.Delete(ctx, id, providerID); err != nil {
		if !store.IsNotFoundError(err) {
			s.log(ctx).Error("failed to delete service",
				"error", redact.Error(err),
				"service_id", id)
		}
		return wrap("delete service", err)
	}
	s.log(ctx).Info("service deleted", "service_id", id, "provider_id", providerID)
	return nil
}

func (s *catalogService) CreateItem(
	ctx context.Context,
	providerID uuid.UUID,
	in ItemInput,
) (*domain.Item, error) {
	if in.Name == nil || *in.Name == "" || in.Price == nil {
		return nil, domain.ErrNameAndPriceMissing
	}

	// Unlike service titles, item names are stored exactly as sent.
	item := domain.NewItem{
		ProviderID: providerID,
		Name:       *in.Name,
		Price:      *in.Price,
	}
	if in.Description != nil && *in.Description != "" {
		item.Description = in.Description
	}
	if in.Stock != nil {
		item.Stock = *in.Stock
	}

	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return nil, wrap("ensure catalog schema", err)
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		s.log(ctx).Error("failed to create item",
			"error", redact.Error(err),
			"provider_id", providerID)
		return nil, wrap("create item", err)
	}

	s.log(ctx).Info("item created",
		"item_id", created.ID,
		"provider_id", providerID)
	return created, nil
}

func (s *catalogService) ListItems(ctx context.Context) ([]domain.Item, error) {
	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return nil, wrap("ensure catalog schema", err)
	}
	items, err := s.items.List(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list items", "error", redact.Error(err))
		return nil, wrap("list items", err)
	}
	return items, nil
}

func (s *catalogService) UpdateItem(
	ctx context.Context,
	id, providerID uuid.UUID,
	in ItemInput,
) (*domain.Item, error) {
	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return nil, wrap("ensure catalog schema", err)
	}

	updated, err := s.items.Update(ctx, id, providerID, domain.ItemChanges(in))
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.log(ctx).Error("failed to update item",
				"error", redact.Error(err),
				"item_id", id)
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return updated, nil
}

func (s *catalogService) DeleteItem(ctx context.Context, id, providerID uuid.UUID) error {
	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return wrap("ensure catalog schema", err)
	}
	if err := s.items.Delete(ctx, id, providerID); err != nil {
		if !store.IsNotFoundError(err) {
			s.log(ctx).Error("failed to delete item",
				"error", redact.Error(err),
				"item_id", id)
		}
		return wrap("delete item", err)
	}
	s.log(ctx).Info("item deleted", "item_id", id, "provider_id", providerID)
	return nil
}
