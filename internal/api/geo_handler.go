package api

import (
	"log/slog"
	"net/http"

	"github.com/pacificaway/pacificaway-api/internal/api/shared"
	"github.com/pacificaway/pacificaway-api/internal/service"
)

// GeoHandler serves /countries, /states and /cities.
type GeoHandler struct {
	geo    service.GeoService
	logger *slog.Logger
}

// NewGeoHandler creates a GeoHandler.
func NewGeoHandler(geo service.GeoService, logger *slog.Logger) *GeoHandler {
	if logger == nil {
		panic("logger cannot be nil for GeoHandler")
	}
	return &GeoHandler{geo: geo, logger: logger.With("component", "geo_handler")}
}

func geoQuery(r *http.Request) service.GeoQuery {
	q := r.URL.Query()
	return service.GeoQuery{
		CountryID:  q.Get("countryId"),
		CountryISO: q.Get("countryIso"),
		StateID:    q.Get("stateId"),
	}
}

// ListCountries handles GET /countries.
func (h *GeoHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.geo.ListCountries(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, ResourceCountry, "Failed to list countries")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"countries": countries})
}

// CreateCountry handles POST /countries.
func (h *GeoHandler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	var req CountryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	country, err := h.geo.CreateCountry(r.Context(), req.Name, req.ISOCode)
	if err != nil {
		HandleAPIError(w, r, err, ResourceCountry, "Failed to create country")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, shared.Envelope{"country": country})
}

// ListStates handles GET /states?countryId=&countryIso=.
func (h *GeoHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.geo.ListStates(r.Context(), geoQuery(r))
	if err != nil {
		HandleAPIError(w, r, err, ResourceState, "Failed to list states")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"states": states})
}

// CreateState handles POST /states.
func (h *GeoHandler) CreateState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	state, err := h.geo.CreateState(r.Context(), service.StateInput(req))
	if err != nil {
		HandleAPIError(w, r, err, ResourceState, "Failed to create state")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, shared.Envelope{"state": state})
}

// ListCities handles GET /cities?countryId=&countryIso=&stateId=.
func (h *GeoHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.geo.ListCities(r.Context(), geoQuery(r))
	if err != nil {
		HandleAPIError(w, r, err, ResourceCity, "Failed to list cities")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"cities": cities})
}

// CreateCity handles POST /cities.
func (h *GeoHandler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req CityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	city, err := h.geo.CreateCity(r.Context(), service.CityInput(req))
	if err != nil {
		HandleAPIError(w, r, err, ResourceCity, "Failed to create city")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, shared.Envelope{"city": city})
}
