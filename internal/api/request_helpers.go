package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/api/shared"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

// requireUserID returns the authenticated user id or writes a 401.
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthenticated")
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the {id} path parameter. A malformed id cannot match any
// row, so it is answered the way the resource answers a miss. Handlers with a
// body validate it first so input errors win over a bad id.
func pathID(w http.ResponseWriter, r *http.Request, res Resource) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, store.ErrNotFound, res, "")
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes the JSON body into v or writes a 400.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}
