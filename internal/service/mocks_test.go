package service

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockCategoryStore mocks store.CategoryStore
type MockCategoryStore struct {
	mock.Mock
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)

func (m *MockCategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryStore) Create(ctx context.Context, name string, description *string) (*domain.Category, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) Update(
	ctx context.Context,
	id uuid.UUID,
	changes domain.CategoryChanges,
) (*domain.Category, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryStore) Lookup(ctx context.Context, rawID string) (uuid.UUID, error) {
	args := m.Called(ctx, rawID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCategoryStore) UpsertByName(ctx context.Context, name string) (uuid.UUID, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockServiceStore mocks store.ServiceStore
type MockServiceStore struct {
	mock.Mock
}

var _ store.ServiceStore = (*MockServiceStore)(nil)

func (m *MockServiceStore) Create(ctx context.Context, svc domain.NewService) (uuid.UUID, error) {
	args := m.Called(ctx, svc)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockServiceStore) Get(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceStore) List(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceStore) Update(
	ctx context.Context,
	id, providerID uuid.UUID,
	changes domain.ServiceChanges,
) error {
	args := m.Called(ctx, id, providerID, changes)
	return args.Error(0)
}

func (m *MockServiceStore) Delete(ctx context.Context, id, providerID uuid.UUID) error {
	args := m.Called(ctx, id, providerID)
	return args.Error(0)
}

// MockItemStore mocks store.ItemStore
type MockItemStore struct {
	mock.Mock
}

var _ store.ItemStore = (*MockItemStore)(nil)

func (m *MockItemStore) Create(ctx context.Context, item domain.NewItem) (*domain.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemStore) List(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemStore) Update(
	ctx context.Context,
	id, providerID uuid.UUID,
	changes domain.ItemChanges,
) (*domain.Item, error) {
	args := m.Called(ctx, id, providerID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemStore) Delete(ctx context.Context, id, providerID uuid.UUID) error {
	args := m.Called(ctx, id, providerID)
	return args.Error(0)
}

// MockBookingStore mocks store.BookingStore
type MockBookingStore struct {
	mock.Mock
}

var _ store.BookingStore = (*MockBookingStore)(nil)

func (m *MockBookingStore) Create(ctx context.Context, booking domain.NewBooking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingStore) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.BookingStatus,
) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

// MockGeoStore mocks store.GeoStore
type MockGeoStore struct {
	mock.Mock
}

var _ store.GeoStore = (*MockGeoStore)(nil)

func (m *MockGeoStore) ListCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func (m *MockGeoStore) CreateCountry(ctx context.Context, name string, isoCode *string) (*domain.Country, error) {
	args := m.Called(ctx, name, isoCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockGeoStore) CountryIDByISO(ctx context.Context, iso string) (uuid.UUID, error) {
	args := m.Called(ctx, iso)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockGeoStore) ListStates(ctx context.Context, filter domain.GeoFilter) ([]domain.State, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.State), args.Error(1)
}

func (m *MockGeoStore) CreateState(
	ctx context.Context,
	name string,
	code *string,
	countryID uuid.UUID,
) (*domain.State, error) {
	args := m.Called(ctx, name, code, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.State), args.Error(1)
}

func (m *MockGeoStore) GetState(ctx context.Context, id uuid.UUID) (*domain.State, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.State), args.Error(1)
}

func (m *MockGeoStore) ListCities(ctx context.Context, filter domain.GeoFilter) ([]domain.City, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *MockGeoStore) CreateCity(
	ctx context.Context,
	name string,
	countryID uuid.UUID,
	stateID *uuid.UUID,
) (*domain.City, error) {
	args := m.Called(ctx, name, countryID, stateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

// MockUserStore mocks store.UserStore
type MockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user domain.NewUser) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockPasswordHasher mocks auth.PasswordHasher
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}

// countingSchema records how often the schema was ensured.
type countingSchema struct {
	calls atomic.Int32
	err   error
}

func (c *countingSchema) EnsureCatalogSchema(context.Context) error {
	c.calls.Add(1)
	return c.err
}
