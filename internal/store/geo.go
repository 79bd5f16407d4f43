package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
)

// GeoStore persists the country / state / city reference data.
type GeoStore interface {
	// ListCountries returns countries ordered by name.
	ListCountries(ctx context.Context) ([]domain.Country, error)
	CreateCountry(ctx context.Context, name string, isoCode *string) (*domain.Country, error)

	// CountryIDByISO resolves an upper-case ISO code. Returns ErrNotFound if
	// no country carries it.
	CountryIDByISO(ctx context.Context, iso string) (uuid.UUID, error)

	// ListStates returns states ordered by country name then state name.
	ListStates(ctx context.Context, filter domain.GeoFilter) ([]domain.State, error)
	CreateState(ctx context.Context, name string, code *string, countryID uuid.UUID) (*domain.State, error)

	// GetState returns a state with its country summary. Returns ErrNotFound
	// if it does not exist.
	GetState(ctx context.Context, id uuid.UUID) (*domain.State, error)

	// ListCities returns cities ordered by country, state, then city name.
	ListCities(ctx context.Context, filter domain.GeoFilter) ([]domain.City, error)
	CreateCity(ctx context.Context, name string, countryID uuid.UUID, stateID *uuid.UUID) (*domain.City, error)
}
