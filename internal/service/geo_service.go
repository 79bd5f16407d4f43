package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/platform/logger"
	"github.com/pacificaway/pacificaway-api/internal/redact"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

// Geography validation failures.
var (
	ErrGeoNameRequired      = domain.NewValidationError("name is required")
	ErrInvalidISOCode       = domain.NewValidationError("isoCode must be 2 characters")
	ErrInvalidCountryID     = domain.NewValidationError("countryId must be a valid UUID")
	ErrInvalidCountryISO    = domain.NewValidationError("countryIso must be a 2 character ISO code")
	ErrInvalidStateID       = domain.NewValidationError("stateId must be a valid UUID")
	ErrCountryISONotFound   = domain.NewValidationError("countryIso not found")
	ErrCountryRequired      = domain.NewValidationError("countryId or countryIso is required")
	ErrStateCodeTooLong     = domain.NewValidationError("code must be 10 characters or fewer")
	ErrStateNotFound        = domain.NewValidationError("stateId not found")
	ErrCountryIDMismatch    = domain.NewValidationError("countryId does not match stateId")
	ErrCountryISOMismatch   = domain.NewValidationError("countryIso does not match stateId")
	ErrCityLocationRequired = domain.NewValidationError("stateId or countryId/countryIso is required")
)

// GeoQuery holds the raw listing filters from a request.
type GeoQuery struct {
	CountryID  string
	CountryISO string
	StateID    string
}

// StateInput is a state creation request. The country is given either by
// id or by ISO code; the id wins when both are present.
type StateInput struct {
	Name       string
	Code       string
	CountryID  string
	CountryISO string
}

// CityInput is a city creation request. When StateID is given the country
// is taken from the state and any supplied country must agree with it.
type CityInput struct {
	Name       string
	StateID    string
	CountryID  string
	CountryISO string
}

// GeoService manages the country, state and city reference data.
type GeoService interface {
	ListCountries(ctx context.Context) ([]domain.Country, error)
	CreateCountry(ctx context.Context, name, isoCode string) (*domain.Country, error)
	ListStates(ctx context.Context, q GeoQuery) ([]domain.State, error)
	CreateState(ctx context.Context, in StateInput) (*domain.State, error)
	ListCities(ctx context.Context, q GeoQuery) ([]domain.City, error)
	CreateCity(ctx context.Context, in CityInput) (*domain.City, error)
}

type geoService struct {
	geo    store.GeoStore
	logger *slog.Logger
}

// NewGeoService creates a GeoService.
func NewGeoService(geo store.GeoStore, log *slog.Logger) GeoService {
	if geo == nil {
		panic("geo store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &geoService{geo: geo, logger: log.With("component", "geo_service")}
}

var _ GeoService = (*geoService)(nil)

func (s *geoService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.geo.ListCountries(ctx)
	if err != nil {
		s.logError(ctx, "list countries", err)
		return nil, wrap("list countries", err)
	}
	return countries, nil
}

func (s *geoService) CreateCountry(ctx context.Context, name, isoCode string) (*domain.Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrGeoNameRequired
	}

	var iso *string
	if code := domain.NormalizeISO(isoCode); code != "" {
		if utf8.RuneCountInString(code) != 2 {
			return nil, ErrInvalidISOCode
		}
		iso = &code
	}

	country, err := s.geo.CreateCountry(ctx, name, iso)
	if err != nil {
		s.logError(ctx, "create country", err)
		return nil, wrap("create country", err)
	}
	return country, nil
}

func (s *geoService) ListStates(ctx context.Context, q GeoQuery) ([]domain.State, error) {
	filter, err := parseGeoFilter(GeoQuery{CountryID: q.CountryID, CountryISO: q.CountryISO})
	if err != nil {
		return nil, err
	}
	states, err := s.geo.ListStates(ctx, filter)
	if err != nil {
		s.logError(ctx, "list states", err)
		return nil, wrap("list states", err)
	}
	return states, nil
}

func (s *geoService) CreateState(ctx context.Context, in StateInput) (*domain.State, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrGeoNameRequired
	}

	countryID, err := s.resolveCountry(ctx, in.CountryID, in.CountryISO)
	if err != nil {
		return nil, err
	}
	if countryID == nil {
		return nil, ErrCountryRequired
	}

	var code *string
	if c := domain.NormalizeISO(in.Code); c != "" {
		if utf8.RuneCountInString(c) > domain.MaxStateCodeLength {
			return nil, ErrStateCodeTooLong
		}
		code = &c
	}

	state, err := s.geo.CreateState(ctx, name, code, *countryID)
	if err != nil {
		s.logError(ctx, "create state", err)
		return nil, wrap("create state", err)
	}
	return state, nil
}

func (s *geoService) ListCities(ctx context.Context, q GeoQuery) ([]domain.City, error) {
	filter, err := parseGeoFilter(q)
	if err != nil {
		return nil, err
	}
	cities, err := s.geo.ListCities(ctx, filter)
	if err != nil {
		s.logError(ctx, "list cities", err)
		return nil, wrap("list cities", err)
	}
	return cities, nil
}

func (s *geoService) CreateCity(ctx context.Context, in CityInput) (*domain.City, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrGeoNameRequired
	}

	var (
		countryID uuid.UUID
		stateID   *uuid.UUID
	)

	if raw := strings.TrimSpace(in.StateID); raw != "" {
		id, ok := domain.ParseStrictUUID(raw)
		if !ok {
			return nil, ErrInvalidStateID
		}
		state, err := s.geo.GetState(ctx, id)
		if store.IsNotFoundError(err) {
			return nil, ErrStateNotFound
		}
		if err != nil {
			return nil, wrap("lookup state", err)
		}
		if err := checkStateCountry(state, in.CountryID, in.CountryISO); err != nil {
			return nil, err
		}
		stateID = &state.ID
		countryID = state.CountryID
	} else {
		resolved, err := s.resolveCountry(ctx, in.CountryID, in.CountryISO)
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			return nil, ErrCityLocationRequired
		}
		countryID = *resolved
	}

	city, err := s.geo.CreateCity(ctx, name, countryID, stateID)
	if err != nil {
		s.logError(ctx, "create city", err)
		return nil, wrap("create city", err)
	}
	return city, nil
}

// resolveCountry returns nil when neither reference was supplied.
func (s *geoService) resolveCountry(ctx context.Context, rawID, rawISO string) (*uuid.UUID, error) {
	if raw := strings.TrimSpace(rawID); raw != "" {
		id, ok := domain.ParseStrictUUID(raw)
		if !ok {
			return nil, ErrInvalidCountryID
		}
		return &id, nil
	}

	if strings.TrimSpace(rawISO) == "" {
		return nil, nil
	}
	iso := domain.NormalizeISO(rawISO)
	if utf8.RuneCountInString(iso) != 2 {
		return nil, ErrInvalidCountryISO
	}
	id, err := s.geo.CountryIDByISO(ctx, iso)
	if store.IsNotFoundError(err) {
		return nil, ErrCountryISONotFound
	}
	if err != nil {
		return nil, wrap("lookup country", err)
	}
	return &id, nil
}

func checkStateCountry(state *domain.State, rawID, rawISO string) error {
	if raw := strings.TrimSpace(rawID); raw != "" {
		id, ok := domain.ParseStrictUUID(raw)
		if !ok {
			return ErrInvalidCountryID
		}
		if id != state.CountryID {
			return ErrCountryIDMismatch
		}
	}
	if strings.TrimSpace(rawISO) != "" {
		iso := domain.NormalizeISO(rawISO)
		if utf8.RuneCountInString(iso) != 2 {
			return ErrInvalidCountryISO
		}
		if state.Country == nil || state.Country.ISOCode == nil || *state.Country.ISOCode != iso {
			return ErrCountryISOMismatch
		}
	}
	return nil
}

func parseGeoFilter(q GeoQuery) (domain.GeoFilter, error) {
	var f domain.GeoFilter
	if q.CountryID != "" {
		id, ok := domain.ParseStrictUUID(q.CountryID)
		if !ok {
			return f, ErrInvalidCountryID
		}
		f.CountryID = &id
	}
	if q.CountryISO != "" {
		iso := domain.NormalizeISO(q.CountryISO)
		if utf8.RuneCountInString(iso) != 2 {
			return f, ErrInvalidCountryISO
		}
		f.CountryISO = iso
	}
	if q.StateID != "" {
		id, ok := domain.ParseStrictUUID(q.StateID)
		if !ok {
			return f, ErrInvalidStateID
		}
		f.StateID = &id
	}
	return f, nil
}

func (s *geoService) logError(ctx context.Context, op string, err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if store.IsDuplicateError(err) {
		log.Debug(op+" conflict", "reason", err.Error())
		return
	}
	log.Error("failed to "+op, "error", redact.Error(err))
}
