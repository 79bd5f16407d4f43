package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serviceCols = []string{
	"id", "provider_id", "provider_name", "category_id", "category",
	"title", "description", "price", "active", "created_at", "updated_at",
}

func TestServiceStore_CreateBindsArgumentsInOrder(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewPostgresServiceStore(db)
	provider := uuid.New()
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO services (title, description, category_id, price, provider_id)")).
		WithArgs("Snorkel trip", nil, nil, 120.0, provider).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	got, err := s.Create(context.Background(), domain.NewService{
		ProviderID: provider,
		Title:      "Snorkel trip",
		Price:      120,
	})

	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestServiceStore_CreateMalformedCategory(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewPostgresServiceStore(db)
	category := uuid.New()

	mock.ExpectQuery("INSERT INTO services").
		WithArgs("Snorkel trip", "Reef tour", category, 80.5, sqlmock.AnyArg()).
		WillReturnError(pgError("22P02"))

	desc := "Reef tour"
	_, err := s.Create(context.Background(), domain.NewService{
		ProviderID:  uuid.New(),
		Title:       "Snorkel trip",
		Description: &desc,
		CategoryID:  &category,
		Price:       80.5,
	})

	assert.ErrorIs(t, err, store.ErrInvalidInput)
}

func TestServiceStore_Get(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewPostgresServiceStore(db)
	id, provider, category := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(`LEFT JOIN categories c ON c.id = s.category_id WHERE s.id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(serviceCols).AddRow(
			id.String(), provider.String(), "Ana Lopez", category.String(), "Tours",
			"Snorkel trip", nil, "120.00", true, fixedTime, fixedTime))

	svc, err := s.Get(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "Snorkel trip", svc.Title)
	assert.Equal(t, "Ana Lopez", svc.ProviderName)
	require.NotNil(t, svc.CategoryID)
	assert.Equal(t, category, *svc.CategoryID)
	require.NotNil(t, svc.CategoryName)
	assert.Equal(t, "Tours", *svc.CategoryName)
	assert.Equal(t, 120.0, svc.Price)
	assert.True(t, svc.Active)
}

func TestServiceStore_ListWithoutCategory(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewPostgresServiceStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY s.created_at DESC")).
		WillReturnRows(sqlmock.NewRows(serviceCols).AddRow(
			uuid.New().String(), uuid.New().String(), nil, nil, nil,
			"Kayak rental", "Two hours", 40.0, false, fixedTime, fixedTime))

	services, err := s.List(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Nil(t, services[0].CategoryID)
	assert.Nil(t, services[0].CategoryName)
	assert.Empty(t, services[0].ProviderName)
	require.NotNil(t, services[0].Description)
	assert.Equal(t, "Two hours", *services[0].Description)
}

func TestServiceStore_UpdateScopesToOwner(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewPostgresServiceStore(db)
	id, owner := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE services SET title = $1, price = $2, updated_at = NOW() WHERE id = $3 AND provider_id = $4 RETURNING id")).
		WithArgs("Sunset cruise", 99.0, id, owner).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	err := s.Update(context.Background(), id, owner, domain.ServiceChanges{
		Title: domain.Some("Sunset cruise"),
		Price: domain.Some(99.0),
	})

	require.NoError(t, err)
}

func TestServiceStore_UpdateWrongOwnerIsNotFound(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewPostgresServiceStore(db)
	id, intruder := uuid.New(), uuid.New()

	mock.ExpectQuery("UPDATE services SET price").
		WithArgs(1.0, id, intruder).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := s.Update(context.Background(), id, intruder, domain.ServiceChanges{Price: domain.Some(1.0)})

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestServiceStore_UpdateClearsCategory(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewPostgresServiceStore(db)
	id, owner := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE services SET category_id = $1, updated_at = NOW()")).
		WithArgs(nil, id, owner).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	err := s.Update(context.Background(), id, owner, domain.ServiceChanges{CategoryID: domain.Null[uuid.UUID]()})

	require.NoError(t, err)
}

func TestServiceStore_UpdateWithoutChangesSkipsDatabase(t *testing.T) {
	db, _ := newStoreMock(t)
	s := NewPostgresServiceStore(db)

	err := s.Update(context.Background(), uuid.New(), uuid.New(), domain.ServiceChanges{})

	assert.ErrorIs(t, err, domain.ErrNoUpdates)
}

func TestServiceStore_Delete(t *testing.T) {
	db, mock := newStoreMock(t)
	s := NewPostgresServiceStore(db)
	id, owner := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM services WHERE id = $1 AND provider_id = $2")).
		WithArgs(id, owner).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.Delete(context.Background(), id, owner), store.ErrNotFound)
}
