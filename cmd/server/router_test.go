package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/config"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   4000,
			LogLevel:               "info",
			ShutdownTimeoutSeconds: 1,
			CORSAllowedOrigins:     []string{"*"},
		},
		Auth: config.AuthConfig{
			JWTSecret:            strings.Repeat("s", 32),
			TokenLifetimeMinutes: 60,
			BCryptCost:           4,
		},
		Schema: config.SchemaConfig{EnsureTimeoutSeconds: 5},
	}
}

func newTestApp(t *testing.T) (*application, sqlmock.Sqlmock, http.Handler) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	app, err := newApplication(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), db)
	require.NoError(t, err)
	return app, mock, app.setupRouter()
}

func bearer(t *testing.T, app *application, role domain.Role) string {
	t.Helper()
	token, err := app.jwtService.GenerateToken(context.Background(), auth.Identity{
		UserID: uuid.New(),
		Role:   role,
		Email:  "user@pacificaway.example",
	})
	require.NoError(t, err)
	return "Bearer " + token
}

func do(h http.Handler, method, target, body, authorization string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Root(t *testing.T) {
	_, _, h := newTestApp(t)

	rec := do(h, http.MethodGet, "/", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "PACIFICAWAY API is running", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRouter_Health(t *testing.T) {
	_, mock, h := newTestApp(t)
	mock.ExpectPing()

	rec := do(h, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_Auth(t *testing.T) {
	app, _, h := newTestApp(t)

	t.Run("missing header on write", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/services", `{"title":"Kayak"}`, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Missing Authorization header"}`, rec.Body.String())
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/bookings", `{}`, "Token abc")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid Authorization"}`, rec.Body.String())
	})

	t.Run("geography writes are admin only", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/countries", `{"name":"Fiji"}`, bearer(t, app, domain.RoleCustomer))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"Forbidden"}`, rec.Body.String())
	})

	t.Run("user listing is admin only", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/users", "", bearer(t, app, domain.RoleProvider))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

// Validation runs before any database work, so these reach the handlers
// through the full stack without touching the mock.
func TestRouter_ValidationWithoutDatabase(t *testing.T) {
	app, mock, h := newTestApp(t)
	token := bearer(t, app, domain.RoleProvider)

	rec := do(h, http.MethodPost, "/categories", `{}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"name required"}`, rec.Body.String())

	rec = do(h, http.MethodPatch, "/services/"+uuid.NewString(), `{}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No updates provided"}`, rec.Body.String())

	rec = do(h, http.MethodPost, "/bookings", `{"service_id":"x"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"service_id and date required"}`, rec.Body.String())

	rec = do(h, http.MethodPatch, "/services/not-a-uuid", `{}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No updates provided"}`, rec.Body.String())

	rec = do(h, http.MethodPatch, "/bookings/not-a-uuid/status", `{"status":"bogus"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid status"}`, rec.Body.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_Metrics(t *testing.T) {
	_, _, h := newTestApp(t)
	do(h, http.MethodGet, "/", "", "")

	rec := do(h, http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pacificaway_http_requests_total{method="GET",route="/",status="200"} 1`)
}

func TestRouter_Preflight(t *testing.T) {
	_, _, h := newTestApp(t)
	req := httptest.NewRequest(http.MethodOptions, "/services", nil)
	req.Header.Set("Origin", "https://app.pacificaway.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
