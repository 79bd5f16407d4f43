package api

import (
	"errors"
	"net/http"

	"github.com/pacificaway/pacificaway-api/internal/api/shared"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/service/auth"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

// Resource names the kind of entity a handler works on. The same store
// sentinel reads differently per resource: a miss on a service means "not
// yours or gone", a miss on a category is just "not found".
type Resource string

const (
	ResourceService  Resource = "service"
	ResourceItem     Resource = "item"
	ResourceCategory Resource = "category"
	ResourceBooking  Resource = "booking"
	ResourceUser     Resource = "user"
	ResourceCountry  Resource = "country"
	ResourceState    Resource = "state"
	ResourceCity     Resource = "city"
)

var notFoundMessages = map[Resource]string{
	ResourceService:  "Not found or not owner",
	ResourceItem:     "Not found or not owner",
	ResourceCategory: "Category not found",
	ResourceBooking:  "Not found",
	ResourceUser:     "Not found",
}

var conflictMessages = map[Resource]string{
	ResourceCategory: "Category name already exists",
	ResourceUser:     "Email already registered",
	ResourceCountry:  "Country already exists",
	ResourceState:    "State already exists for country",
	ResourceCity:     "City already exists for location",
}

var invalidInputMessages = map[Resource]string{
	ResourceService: "Invalid category id",
	ResourceBooking: "Invalid service_id or date",
}

// MapErrorToStatusCode maps service and store errors to HTTP status codes.
// Anything unrecognised is a 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidInput),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err on res.
// Validation messages are passed through verbatim; everything else comes
// from a fixed table so storage details never reach the client. fallback is
// used for server errors.
func GetSafeErrorMessage(err error, res Resource, fallback string) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}

	switch MapErrorToStatusCode(err) {
	case http.StatusBadRequest:
		if msg, ok := invalidInputMessages[res]; ok {
			return msg
		}
		return "Invalid input"
	case http.StatusUnauthorized:
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return "Invalid credentials"
		}
		return "Invalid or expired token"
	case http.StatusNotFound:
		if msg, ok := notFoundMessages[res]; ok {
			return msg
		}
		return "Not found"
	case http.StatusConflict:
		if msg, ok := conflictMessages[res]; ok {
			return msg
		}
		return "Already exists"
	}

	if fallback == "" {
		return "An unexpected error occurred"
	}
	return fallback
}

// HandleAPIError writes the response for err and logs its redacted cause.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, res Resource, fallback string) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err, res, fallback), err)
}
