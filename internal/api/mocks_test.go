package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/service"
)

type fakeCatalog struct {
	service.CatalogService
	createServiceFn func(ctx context.Context, providerID uuid.UUID, in service.ServiceInput) (*domain.Service, error)
	listServicesFn  func(ctx context.Context) ([]domain.Service, error)
	updateServiceFn func(ctx context.Context, id, providerID uuid.UUID, in service.ServiceInput) (*domain.Service, error)
	deleteServiceFn func(ctx context.Context, id, providerID uuid.UUID) error
	createItemFn    func(ctx context.Context, providerID uuid.UUID, in service.ItemInput) (*domain.Item, error)
	updateItemFn    func(ctx context.Context, id, providerID uuid.UUID, in service.ItemInput) (*domain.Item, error)
}

func (f *fakeCatalog) CreateService(ctx context.Context, providerID uuid.UUID, in service.ServiceInput) (*domain.Service, error) {
	return f.createServiceFn(ctx, providerID, in)
}

func (f *fakeCatalog) ListServices(ctx context.Context) ([]domain.Service, error) {
	return f.listServicesFn(ctx)
}

func (f *fakeCatalog) UpdateService(
	ctx context.Context,
	id, providerID uuid.UUID,
	in service.ServiceInput,
) (*domain.Service, error) {
	return f.updateServiceFn(ctx, id, providerID, in)
}

func (f *fakeCatalog) DeleteService(ctx context.Context, id, providerID uuid.UUID) error {
	return f.deleteServiceFn(ctx, id, providerID)
}

func (f *fakeCatalog) CreateItem(ctx context.Context, providerID uuid.UUID, in service.ItemInput) (*domain.Item, error) {
	return f.createItemFn(ctx, providerID, in)
}

func (f *fakeCatalog) UpdateItem(
	ctx context.Context,
	id, providerID uuid.UUID,
	in service.ItemInput,
) (*domain.Item, error) {
	return f.updateItemFn(ctx, id, providerID, in)
}

type fakeCategories struct {
	service.CategoryService
	createFn func(ctx context.Context, name string, description *string) (*domain.Category, error)
	updateFn func(ctx context.Context, id uuid.UUID, changes domain.CategoryChanges) (*domain.Category, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeCategories) Create(ctx context.Context, name string, description *string) (*domain.Category, error) {
	return f.createFn(ctx, name, description)
}

func (f *fakeCategories) Update(
	ctx context.Context,
	id uuid.UUID,
	changes domain.CategoryChanges,
) (*domain.Category, error) {
	return f.updateFn(ctx, id, changes)
}

func (f *fakeCategories) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

type fakeBookings struct {
	service.BookingService
	createFn       func(ctx context.Context, customerID uuid.UUID, serviceID, date string, notes *string) (*domain.Booking, error)
	listMineFn     func(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error)
}

func (f *fakeBookings) Create(
	ctx context.Context,
	customerID uuid.UUID,
	serviceID, date string,
	notes *string,
) (*domain.Booking, error) {
	return f.createFn(ctx, customerID, serviceID, date, notes)
}

func (f *fakeBookings) ListMine(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error) {
	return f.listMineFn(ctx, customerID)
}

func (f *fakeBookings) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.BookingStatus,
) (*domain.Booking, error) {
	return f.updateStatusFn(ctx, id, status)
}

type fakeUsers struct {
	service.UserService
	registerFn func(ctx context.Context, r service.Registration) (*domain.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
	getFn      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (f *fakeUsers) Register(ctx context.Context, r service.Registration) (*domain.User, string, error) {
	return f.registerFn(ctx, r)
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (string, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeUsers) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return f.getFn(ctx, id)
}

type fakeGeo struct {
	service.GeoService
	listStatesFn func(ctx context.Context, q service.GeoQuery) ([]domain.State, error)
	createCityFn func(ctx context.Context, in service.CityInput) (*domain.City, error)
}

func (f *fakeGeo) ListStates(ctx context.Context, q service.GeoQuery) ([]domain.State, error) {
	return f.listStatesFn(ctx, q)
}

func (f *fakeGeo) CreateCity(ctx context.Context, in service.CityInput) (*domain.City, error) {
	return f.createCityFn(ctx, in)
}
