package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

const serviceSelect = `
SELECT s.id, s.provider_id, u.name AS provider_name, s.category_id, c.name AS category,
       s.title, s.description, s.price, s.active, s.created_at, s.updated_at
FROM services s
LEFT JOIN users u ON u.id = s.provider_id
LEFT JOIN categories c ON c.id = s.category_id`

// PostgresServiceStore implements store.ServiceStore.
type PostgresServiceStore struct {
	db store.DBTX
}

// NewPostgresServiceStore creates a service store on db.
func NewPostgresServiceStore(db store.DBTX) *PostgresServiceStore {
	return &PostgresServiceStore{db: db}
}

var _ store.ServiceStore = (*PostgresServiceStore)(nil)

func scanService(row rowScanner) (*domain.Service, error) {
	var (
		s            domain.Service
		providerName sql.NullString
		categoryID   uuid.NullUUID
		categoryName sql.NullString
		title        sql.NullString
		description  sql.NullString
		price        sql.NullFloat64
		active       sql.NullBool
	)
	err := row.Scan(&s.ID, &s.ProviderID, &providerName, &categoryID, &categoryName,
		&title, &description, &price, &active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.ProviderName = providerName.String
	if categoryID.Valid {
		id := categoryID.UUID
		s.CategoryID = &id
	}
	s.CategoryName = stringPtr(categoryName)
	s.Title = title.String
	s.Description = stringPtr(description)
	s.Price = price.Float64
	s.Active = active.Bool
	return &s, nil
}

// Create implements store.ServiceStore.Create.
func (s *PostgresServiceStore) Create(ctx context.Context, svc domain.NewService) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO services (title, description, category_id, price, provider_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		svc.Title, nullable(svc.Description), nullable(svc.CategoryID), svc.Price, svc.ProviderID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, MapError(err)
	}
	return id, nil
}

// Get implements store.ServiceStore.Get.
func (s *PostgresServiceStore) Get(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	svc, err := scanService(s.db.QueryRowContext(ctx, serviceSelect+` WHERE s.id = $1`, id))
	if err != nil {
		return nil, MapError(err)
	}
	return svc, nil
}

// List implements store.ServiceStore.List.
func (s *PostgresServiceStore) List(ctx context.Context) ([]domain.Service, error) {
	rows, err := s.db.QueryContext(ctx, serviceSelect+` ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	services := []domain.Service{}
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, MapError(err)
		}
		services = append(services, *svc)
	}
	return services, MapError(rows.Err())
}

// Update implements store.ServiceStore.Update. The owner predicate is part
// of the UPDATE itself, so a foreign row is indistinguishable from a missing one.
func (s *PostgresServiceStore) Update(
	ctx context.Context,
	id, providerID uuid.UUID,
	changes domain.ServiceChanges,
) error {
	b := NewUpdateBuilder("services").
		Where("id", id).
		Where("provider_id", providerID).
		Returning("id")
	SetOptional(b, "title", changes.Title)
	SetOptional(b, "description", changes.Description)
	SetOptional(b, "category_id", changes.CategoryID)
	SetOptional(b, "price", changes.Price)
	SetOptional(b, "active", changes.Active)

	query, args, err := b.Build()
	if err != nil {
		return err
	}

	var updated uuid.UUID
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&updated); err != nil {
		return MapError(err)
	}
	return nil
}

// Delete implements store.ServiceStore.Delete.
func (s *PostgresServiceStore) Delete(ctx context.Context, id, providerID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM services WHERE id = $1 AND provider_id = $2`, id, providerID)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(res, "service")
}

// nullable turns a nil pointer into an untyped nil argument.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
