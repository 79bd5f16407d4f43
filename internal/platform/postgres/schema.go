package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pacificaway/pacificaway-api/internal/platform/logger"
	"github.com/pacificaway/pacificaway-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultSchemaTimeout bounds one schema evolution attempt when no timeout is configured.
const DefaultSchemaTimeout = time.Minute

// schemaLockKey identifies the catalog schema routine in pg_advisory_xact_lock.
const schemaLockKey int64 = 0x7061636966696361

const createPgcrypto = `CREATE EXTENSION IF NOT EXISTS "pgcrypto"`

const acquireSchemaLock = `SELECT pg_advisory_xact_lock($1)`

type schemaStep struct {
	name  string
	query string
}

// catalogSchemaSteps bring the catalog tables to their current shape. Each
// statement is safe to run against a database that already has it applied.
var catalogSchemaSteps = []schemaStep{
	{"create categories", `
CREATE TABLE IF NOT EXISTS categories (
  id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
  name text NOT NULL UNIQUE,
  description text,
  created_at timestamp NOT NULL DEFAULT now(),
  updated_at timestamp NOT NULL DEFAULT now()
)`},
	{"copy legacy service_categories", `
DO $do$
BEGIN
  IF to_regclass('public.service_categories') IS NOT NULL THEN
    INSERT INTO categories (id, name, description, created_at, updated_at)
    SELECT id, name, NULL, COALESCE(created_at, NOW()), COALESCE(updated_at, NOW())
    FROM service_categories
    ON CONFLICT DO NOTHING;
  END IF;
END
$do$`},

	{"create services", `CREATE TABLE IF NOT EXISTS services (id uuid PRIMARY KEY DEFAULT gen_random_uuid())`},
	{"add services columns", `
ALTER TABLE services
  ADD COLUMN IF NOT EXISTS provider_id uuid,
  ADD COLUMN IF NOT EXISTS category_id uuid,
  ADD COLUMN IF NOT EXISTS title text,
  ADD COLUMN IF NOT EXISTS description text,
  ADD COLUMN IF NOT EXISTS price numeric(12,2),
  ADD COLUMN IF NOT EXISTS active boolean DEFAULT true,
  ADD COLUMN IF NOT EXISTS created_at timestamp DEFAULT now(),
  ADD COLUMN IF NOT EXISTS updated_at timestamp DEFAULT now()`},
	{"backfill services title", `
DO $do$
BEGIN
  IF EXISTS (
    SELECT 1 FROM information_schema.columns
    WHERE table_schema = 'public' AND table_name = 'services' AND column_name = 'name'
  ) THEN
    UPDATE services SET title = name WHERE title IS NULL AND name IS NOT NULL;
  END IF;
END
$do$`},
	{"drop services name", `ALTER TABLE services DROP COLUMN IF EXISTS name`},
	{"backfill services defaults", `
UPDATE services SET
  active = COALESCE(active, true),
  created_at = COALESCE(created_at, NOW()),
  updated_at = COALESCE(updated_at, NOW())
WHERE active IS NULL OR created_at IS NULL OR updated_at IS NULL`},
	{"index services provider", `CREATE INDEX IF NOT EXISTS idx_services_provider ON services(provider_id)`},
	{"index services category", `CREATE INDEX IF NOT EXISTS idx_services_category ON services(category_id)`},
	{"clear orphaned service categories", `
UPDATE services s SET category_id = NULL
WHERE s.category_id IS NOT NULL
  AND NOT EXISTS (SELECT 1 FROM categories c WHERE c.id = s.category_id)`},
	{"drop services category fkey", `ALTER TABLE services DROP CONSTRAINT IF EXISTS services_category_id_fkey`},
	{"add services category fkey", `
ALTER TABLE services
  ADD CONSTRAINT services_category_id_fkey
  FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL`},

	{"create items", `CREATE TABLE IF NOT EXISTS items (id uuid PRIMARY KEY DEFAULT gen_random_uuid())`},
	{"add items columns", `
ALTER TABLE items
  ADD COLUMN IF NOT EXISTS provider_id uuid,
  ADD COLUMN IF NOT EXISTS name text,
  ADD COLUMN IF NOT EXISTS description text,
  ADD COLUMN IF NOT EXISTS price numeric(12,2),
  ADD COLUMN IF NOT EXISTS stock integer DEFAULT 0,
  ADD COLUMN IF NOT EXISTS active boolean DEFAULT true,
  ADD COLUMN IF NOT EXISTS created_at timestamp DEFAULT now(),
  ADD COLUMN IF NOT EXISTS updated_at timestamp DEFAULT now()`},
	{"backfill items defaults", `
UPDATE items SET
  stock = COALESCE(stock, 0),
  active = COALESCE(active, true),
  created_at = COALESCE(created_at, NOW()),
  updated_at = COALESCE(updated_at, NOW())
WHERE stock IS NULL OR active IS NULL OR created_at IS NULL OR updated_at IS NULL`},
	{"index items provider", `CREATE INDEX IF NOT EXISTS idx_items_provider ON items(provider_id)`},

	{"create bookings", `CREATE TABLE IF NOT EXISTS bookings (id uuid PRIMARY KEY DEFAULT gen_random_uuid())`},
	{"add bookings columns", `
ALTER TABLE bookings
  ADD COLUMN IF NOT EXISTS service_id uuid,
  ADD COLUMN IF NOT EXISTS customer_id uuid,
  ADD COLUMN IF NOT EXISTS date timestamp,
  ADD COLUMN IF NOT EXISTS status text DEFAULT 'pending',
  ADD COLUMN IF NOT EXISTS notes text,
  ADD COLUMN IF NOT EXISTS created_at timestamp DEFAULT now(),
  ADD COLUMN IF NOT EXISTS updated_at timestamp DEFAULT now()`},
	{"backfill bookings defaults", `
UPDATE bookings SET
  status = COALESCE(status, 'pending'),
  created_at = COALESCE(created_at, NOW()),
  updated_at = COALESCE(updated_at, NOW())
WHERE status IS NULL OR created_at IS NULL OR updated_at IS NULL`},
	{"index bookings customer", `CREATE INDEX IF NOT EXISTS idx_bookings_customer ON bookings(customer_id)`},
	{"index bookings service", `CREATE INDEX IF NOT EXISTS idx_bookings_service ON bookings(service_id)`},
}

// schemaAttempt is a single run of the schema routine that any number of
// callers can wait on. err is written before done is closed.
type schemaAttempt struct {
	done chan struct{}
	err  error
}

// SchemaManager applies the catalog schema at most once per process.
// Concurrent callers share the in-flight attempt. A successful attempt is
// remembered; a failed one is forgotten so the next caller retries.
type SchemaManager struct {
	db      *sql.DB
	logger  *slog.Logger
	timeout time.Duration
	runs    *prometheus.CounterVec

	mu      sync.Mutex
	attempt *schemaAttempt
}

// SchemaOption configures a SchemaManager.
type SchemaOption func(*SchemaManager)

// WithSchemaTimeout bounds a single attempt. Non-positive values are ignored.
func WithSchemaTimeout(d time.Duration) SchemaOption {
	return func(m *SchemaManager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithSchemaLogger sets the logger used for attempt outcomes.
func WithSchemaLogger(l *slog.Logger) SchemaOption {
	return func(m *SchemaManager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSchemaRunCounter counts attempts by outcome ("success" or "failure").
func WithSchemaRunCounter(c *prometheus.CounterVec) SchemaOption {
	return func(m *SchemaManager) { m.runs = c }
}

// NewSchemaManager creates a SchemaManager for db.
func NewSchemaManager(db *sql.DB, opts ...SchemaOption) *SchemaManager {
	if db == nil {
		panic("db cannot be nil")
	}
	m := &SchemaManager{
		db:      db,
		logger:  slog.Default(),
		timeout: DefaultSchemaTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(slog.String("component", "catalog_schema"))
	return m
}

// EnsureCatalogSchema blocks until the catalog schema is in place or ctx is
// done. The migration itself is not cancelled when ctx is; it keeps running
// under its own timeout so other waiters can still use its result.
func (m *SchemaManager) EnsureCatalogSchema(ctx context.Context) error {
	m.mu.Lock()
	a := m.attempt
	if a == nil {
		a = &schemaAttempt{done: make(chan struct{})}
		m.attempt = a
		go m.run(context.WithoutCancel(ctx), a)
	}
	m.mu.Unlock()

	select {
	case <-a.done:
		return a.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *SchemaManager) run(parent context.Context, a *schemaAttempt) {
	ctx, cancel := context.WithTimeout(parent, m.timeout)
	defer cancel()

	start := time.Now()
	err := m.migrate(ctx)

	m.mu.Lock()
	if err != nil && m.attempt == a {
		m.attempt = nil
	}
	a.err = err
	m.mu.Unlock()
	close(a.done)

	outcome := "success"
	if err != nil {
		outcome = "failure"
		m.logger.Error("catalog schema evolution failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)))
	} else {
		m.logger.Info("catalog schema ready", slog.Duration("duration", time.Since(start)))
	}
	if m.runs != nil {
		m.runs.WithLabelValues(outcome).Inc()
	}
}

func (m *SchemaManager) migrate(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, createPgcrypto); err != nil {
		switch {
		case IsUniqueViolation(err):
			// Another process created the extension between our check and insert.
			m.logger.Debug("pgcrypto extension installed concurrently")
		case isMissingExtensionSupport(err):
			m.logger.Warn("pgcrypto extension unavailable, relying on built-in gen_random_uuid",
				slog.String("error", err.Error()))
		default:
			return fmt.Errorf("create pgcrypto extension: %w", err)
		}
	}

	return store.RunInTransaction(logger.WithLogger(ctx, m.logger), m.db,
		func(ctx context.Context, tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, acquireSchemaLock, schemaLockKey); err != nil {
				return fmt.Errorf("acquire schema lock: %w", err)
			}
			for _, step := range catalogSchemaSteps {
				if _, err := tx.ExecContext(ctx, step.query); err != nil {
					return fmt.Errorf("schema step %q: %w", step.name, err)
				}
			}
			return nil
		})
}
