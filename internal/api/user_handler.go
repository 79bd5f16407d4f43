package api

import (
	"log/slog"
	"net/http"

	"github.com/pacificaway/pacificaway-api/internal/api/shared"
	"github.com/pacificaway/pacificaway-api/internal/service"
)

// UserHandler serves /users.
type UserHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		panic("logger cannot be nil for UserHandler")
	}
	return &UserHandler{users: users, logger: logger.With("component", "user_handler")}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	user, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, ResourceUser, "Failed to fetch profile")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"user": userToResponse(*user)})
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, ResourceUser, "Failed to list users")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"users": usersToResponse(users)})
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ResourceUser)
	if !ok {
		return
	}
	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, ResourceUser, "Failed to get user")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"user": userToResponse(*user)})
}
