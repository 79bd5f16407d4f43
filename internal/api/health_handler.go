package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pacificaway/pacificaway-api/internal/api/shared"
	"github.com/pacificaway/pacificaway-api/internal/platform/logger"
	"github.com/pacificaway/pacificaway-api/internal/redact"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the database is reachable.
type HealthHandler struct {
	db      Pinger
	now     func() time.Time
	timeout time.Duration
	logger  *slog.Logger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		panic("logger cannot be nil for HealthHandler")
	}
	return &HealthHandler{
		db:      db,
		now:     time.Now,
		timeout: 2 * time.Second,
		logger:  logger.With("component", "health_handler"),
	}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("database ping failed",
			"error", redact.Error(err))
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, shared.Envelope{"status": "db_error"})
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{
		"status": "ok",
		"time":   h.now().UTC(),
	})
}

// Root handles GET / with a plain-text banner.
func Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("PACIFICAWAY API is running"))
}
