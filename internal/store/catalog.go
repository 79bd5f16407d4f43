package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
)

// CategoryStore persists service categories.
type CategoryStore interface {
	// List returns all categories, newest first.
	List(ctx context.Context) ([]domain.Category, error)

	// Create inserts a category. Returns ErrDuplicate if the name is taken.
	Create(ctx context.Context, name string, description *string) (*domain.Category, error)

	// Update applies a sparse change set. Returns ErrNotFound if no row has id
	// and ErrDuplicate if a rename collides.
	Update(ctx context.Context, id uuid.UUID, changes domain.CategoryChanges) (*domain.Category, error)

	// Delete removes a category. Services referencing it keep existing with
	// a NULL category. Returns ErrNotFound if no row has id.
	Delete(ctx context.Context, id uuid.UUID) error

	// Lookup checks that a category exists. rawID is passed to the database
	// as-is, so a malformed id yields ErrInvalidInput and an unknown one
	// yields ErrNotFound.
	Lookup(ctx context.Context, rawID string) (uuid.UUID, error)

	// UpsertByName returns the id of the category with the given name,
	// creating it when missing.
	UpsertByName(ctx context.Context, name string) (uuid.UUID, error)
}

// ServiceStore persists provider services. Mutations are scoped to the
// owning provider: a row owned by someone else behaves as if absent.
type ServiceStore interface {
	Create(ctx context.Context, svc domain.NewService) (uuid.UUID, error)

	// Get returns a service joined with its provider and category names.
	Get(ctx context.Context, id uuid.UUID) (*domain.Service, error)

	// List returns all services joined with provider and category names,
	// newest first.
	List(ctx context.Context) ([]domain.Service, error)

	// Update applies changes to the service id owned by providerID.
	// Returns domain.ErrNoUpdates without touching the database when changes
	// is empty, and ErrNotFound when no owned row matched.
	Update(ctx context.Context, id, providerID uuid.UUID, changes domain.ServiceChanges) error

	// Delete removes the service id owned by providerID. Returns ErrNotFound
	// when no owned row matched.
	Delete(ctx context.Context, id, providerID uuid.UUID) error
}

// ItemStore persists provider items with the same ownership scoping as
// ServiceStore.
type ItemStore interface {
	Create(ctx context.Context, item domain.NewItem) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)

	// Update keeps the current value of every nil field in changes.
	Update(ctx context.Context, id, providerID uuid.UUID, changes domain.ItemChanges) (*domain.Item, error)
	Delete(ctx context.Context, id, providerID uuid.UUID) error
}
