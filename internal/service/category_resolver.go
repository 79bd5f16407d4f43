package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

// CategoryResolver turns a client's category reference into a category id.
// A reference is either an id, which must exist, or a free-text name, which
// is created on first use.
type CategoryResolver struct {
	categories store.CategoryStore
}

// NewCategoryResolver creates a resolver backed by categories.
func NewCategoryResolver(categories store.CategoryStore) *CategoryResolver {
	if categories == nil {
		panic("categories cannot be nil")
	}
	return &CategoryResolver{categories: categories}
}

// Resolve returns Unset when neither reference was supplied, Null when the
// supplied reference is null or blank, and the category id otherwise. id
// takes precedence over name. An unknown id yields domain.ErrCategoryNotFound;
// a malformed one surfaces as store.ErrInvalidInput.
func (r *CategoryResolver) Resolve(
	ctx context.Context,
	id domain.Optional[string],
	name domain.Optional[string],
) (domain.Optional[uuid.UUID], error) {
	if id.IsSet() {
		raw := strings.TrimSpace(id.Value())
		if id.IsNull() || raw == "" {
			return domain.Null[uuid.UUID](), nil
		}
		found, err := r.categories.Lookup(ctx, raw)
		if store.IsNotFoundError(err) {
			return domain.Unset[uuid.UUID](), domain.ErrCategoryNotFound
		}
		if err != nil {
			return domain.Unset[uuid.UUID](), wrap("lookup category", err)
		}
		return domain.Some(found), nil
	}

	if name.IsSet() {
		trimmed := domain.NormalizeName(name.Value())
		if name.IsNull() || trimmed == "" {
			return domain.Null[uuid.UUID](), nil
		}
		upserted, err := r.categories.UpsertByName(ctx, trimmed)
		if err != nil {
			return domain.Unset[uuid.UUID](), wrap("upsert category", err)
		}
		return domain.Some(upserted), nil
	}

	return domain.Unset[uuid.UUID](), nil
}
