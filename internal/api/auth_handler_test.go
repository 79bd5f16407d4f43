package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/service"
	"github.com/pacificaway/pacificaway-api/internal/service/auth"
	"github.com/pacificaway/pacificaway-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	userID := uuid.New()
	users := &fakeUsers{
		registerFn: func(_ context.Context, r service.Registration) (*domain.User, string, error) {
			if r.Email == "taken@example.com" {
				return nil, "", store.ErrEmailExists
			}
			return &domain.User{ID: userID, Name: "Ana Maria Lima", Email: r.Email, Role: r.Role}, "tok", nil
		},
	}
	h := NewAuthHandler(users, testLogger())

	t.Run("created", func(t *testing.T) {
		rec := serve(http.MethodPost, "/auth/register", "/auth/register",
			`{"firstName":"Ana Maria","lastName":"Lima","email":"ana@example.com","password":"pw","role":"customer"}`,
			uuid.Nil, h.Register)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "tok", body.Token)
		require.NotNil(t, body.User.FirstName)
		assert.Equal(t, "Ana", *body.User.FirstName)
		assert.Equal(t, "Maria Lima", *body.User.LastName)
	})

	t.Run("missing role", func(t *testing.T) {
		rec := serve(http.MethodPost, "/auth/register", "/auth/register",
			`{"name":"Ana","email":"ana@example.com","password":"pw"}`, uuid.Nil, h.Register)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"firstName (or name), email, password, role are required"}`, rec.Body.String())
	})

	t.Run("email taken", func(t *testing.T) {
		rec := serve(http.MethodPost, "/auth/register", "/auth/register",
			`{"name":"Ana","email":"taken@example.com","password":"pw","role":"customer"}`, uuid.Nil, h.Register)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"Email already registered"}`, rec.Body.String())
	})
}

func TestAuthHandler_Login(t *testing.T) {
	users := &fakeUsers{
		loginFn: func(_ context.Context, email, password string) (string, error) {
			if password != "pw" {
				return "", auth.ErrInvalidCredentials
			}
			return "tok", nil
		},
	}
	h := NewAuthHandler(users, testLogger())

	rec := serve(http.MethodPost, "/auth/login", "/auth/login", `{"email":"a@b.c","password":"pw"}`, uuid.Nil, h.Login)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"tok"}`, rec.Body.String())

	rec = serve(http.MethodPost, "/auth/login", "/auth/login", `{"email":"a@b.c","password":"no"}`, uuid.Nil, h.Login)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())

	rec = serve(http.MethodPost, "/auth/login", "/auth/login", `{"email":"a@b.c"}`, uuid.Nil, h.Login)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"email and password required"}`, rec.Body.String())

	rec = serve(http.MethodPost, "/auth/logout", "/auth/logout", "", uuid.Nil, h.Logout)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler(t *testing.T) {
	me := uuid.New()
	users := &fakeUsers{
		getFn: func(_ context.Context, id uuid.UUID) (*domain.User, error) {
			if id != me {
				return nil, store.ErrUserNotFound
			}
			return &domain.User{ID: id, Name: "Ana", Role: domain.RoleAdmin}, nil
		},
	}
	h := NewUserHandler(users, testLogger())

	rec := serve(http.MethodGet, "/users/me", "/users/me", "", me, h.Me)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"firstName":"Ana"`)
	assert.Contains(t, rec.Body.String(), `"lastName":null`)

	rec = serve(http.MethodGet, "/users/{id}", "/users/"+uuid.NewString(), "", me, h.Get)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}
