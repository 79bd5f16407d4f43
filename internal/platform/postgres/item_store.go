package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

const itemColumns = "id, provider_id, name, description, price, stock, active, created_at, updated_at"

// PostgresItemStore implements store.ItemStore.
type PostgresItemStore struct {
	db store.DBTX
}

// NewPostgresItemStore creates an item store on db.
func NewPostgresItemStore(db store.DBTX) *PostgresItemStore {
	return &PostgresItemStore{db: db}
}

var _ store.ItemStore = (*PostgresItemStore)(nil)

// scanItem reads itemColumns, optionally followed by the provider name.
func scanItem(row rowScanner, withProvider bool) (*domain.Item, error) {
	var (
		it           domain.Item
		name         sql.NullString
		description  sql.NullString
		price        sql.NullFloat64
		stock        sql.NullInt64
		active       sql.NullBool
		providerName sql.NullString
	)
	dest := []any{&it.ID, &it.ProviderID, &name, &description, &price, &stock, &active,
		&it.CreatedAt, &it.UpdatedAt}
	if withProvider {
		dest = append(dest, &providerName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	it.Name = name.String
	it.Description = stringPtr(description)
	it.Price = price.Float64
	it.Stock = int(stock.Int64)
	it.Active = active.Bool
	it.ProviderName = providerName.String
	return &it, nil
}

// Create implements store.ItemStore.Create.
func (s *PostgresItemStore) Create(ctx context.Context, item domain.NewItem) (*domain.Item, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO items (name, description, price, stock, provider_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+itemColumns,
		item.Name, nullable(item.Description), item.Price, item.Stock, item.ProviderID)
	it, err := scanItem(row, false)
	if err != nil {
		return nil, MapError(err)
	}
	return it, nil
}

// List implements store.ItemStore.List.
func (s *PostgresItemStore) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.provider_id, i.name, i.description, i.price, i.stock, i.active,
		       i.created_at, i.updated_at, u.name AS provider_name
		FROM items i
		LEFT JOIN users u ON u.id = i.provider_id
		ORDER BY i.created_at DESC`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.Item{}
	for rows.Next() {
		it, err := scanItem(rows, true)
		if err != nil {
			return nil, MapError(err)
		}
		items = append(items, *it)
	}
	return items, MapError(rows.Err())
}

// Update implements store.ItemStore.Update. Every column is written through
// COALESCE, so a nil change keeps the stored value.
func (s *PostgresItemStore) Update(
	ctx context.Context,
	id, providerID uuid.UUID,
	changes domain.ItemChanges,
) (*domain.Item, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE items SET
		  name = COALESCE($2, name),
		  description = COALESCE($3, description),
		  price = COALESCE($4, price),
		  stock = COALESCE($5, stock),
		  active = COALESCE($6, active),
		  updated_at = NOW()
		WHERE id = $1 AND provider_id = $7
		RETURNING `+itemColumns,
		id,
		nullable(changes.Name),
		nullable(changes.Description),
		nullable(changes.Price),
		nullable(changes.Stock),
		nullable(changes.Active),
		providerID,
	)
	it, err := scanItem(row, false)
	if err != nil {
		return nil, MapError(err)
	}
	return it, nil
}

// Delete implements store.ItemStore.Delete.
func (s *PostgresItemStore) Delete(ctx context.Context, id, providerID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM items WHERE id = $1 AND provider_id = $2`, id, providerID)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(res, "item")
}
