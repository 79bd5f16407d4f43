package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/platform/logger"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

const categoryColumns = "id, name, description, created_at, updated_at"

// PostgresCategoryStore implements store.CategoryStore.
type PostgresCategoryStore struct {
	db store.DBTX
}

// NewPostgresCategoryStore creates a category store on db.
func NewPostgresCategoryStore(db store.DBTX) *PostgresCategoryStore {
	return &PostgresCategoryStore{db: db}
}

var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var c domain.Category
	var description sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Description = stringPtr(description)
	return &c, nil
}

// List implements store.CategoryStore.List.
func (s *PostgresCategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY created_at DESC`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, MapError(err)
		}
		categories = append(categories, *c)
	}
	return categories, MapError(rows.Err())
}

// Create implements store.CategoryStore.Create.
func (s *PostgresCategoryStore) Create(
	ctx context.Context,
	name string,
	description *string,
) (*domain.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING `+categoryColumns,
		name, description)
	c, err := scanCategory(row)
	if err != nil {
		logger.FromContext(ctx).Debug("category insert failed",
			slog.String("name", name), slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return c, nil
}

// Update implements store.CategoryStore.Update.
func (s *PostgresCategoryStore) Update(
	ctx context.Context,
	id uuid.UUID,
	changes domain.CategoryChanges,
) (*domain.Category, error) {
	b := NewUpdateBuilder("categories").Where("id", id).Returning(categoryColumns)
	SetOptional(b, "name", changes.Name)
	SetOptional(b, "description", changes.Description)

	query, args, err := b.Build()
	if err != nil {
		return nil, err
	}

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, MapError(err)
	}
	return c, nil
}

// Delete implements store.CategoryStore.Delete.
func (s *PostgresCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(res, "category")
}

// Lookup implements store.CategoryStore.Lookup.
func (s *PostgresCategoryStore) Lookup(ctx context.Context, rawID string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, `SELECT id FROM categories WHERE id = $1`, rawID).Scan(&id)
	if err != nil {
		return uuid.Nil, MapError(err)
	}
	return id, nil
}

// UpsertByName implements store.CategoryStore.UpsertByName. A concurrent
// insert of the same name converges on the single existing row.
func (s *PostgresCategoryStore) UpsertByName(ctx context.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET updated_at = NOW()
		RETURNING id`, name).Scan(&id)
	if err != nil {
		return uuid.Nil, MapError(err)
	}
	return id, nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
