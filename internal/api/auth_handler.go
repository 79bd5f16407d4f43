package api

import (
	"log/slog"
	"net/http"

	"github.com/pacificaway/pacificaway-api/internal/api/shared"
	"github.com/pacificaway/pacificaway-api/internal/service"
)

// AuthHandler serves /auth.
type AuthHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(users service.UserService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		panic("logger cannot be nil for AuthHandler")
	}
	return &AuthHandler{users: users, logger: logger.With("component", "auth_handler")}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, service.ErrRegistrationFieldsMissing, ResourceUser, "")
		return
	}

	user, token, err := h.users.Register(r.Context(), service.Registration{
		Name:      req.Name,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		HandleAPIError(w, r, err, ResourceUser, "Registration failed")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		User:  userToResponse(*user),
		Token: token,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, service.ErrCredentialsMissing, ResourceUser, "")
		return
	}

	token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, ResourceUser, "Login failed")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

// Logout handles POST /auth/logout. Tokens are stateless, so there is
// nothing to revoke.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{
		"message": "Logged out (client should discard token)",
	})
}
