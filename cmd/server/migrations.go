package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pacificaway/pacificaway-api/internal/config"
	"github.com/pacificaway/pacificaway-api/internal/platform/postgres"
	"github.com/pressly/goose/v3"
)

// migrationTableName is the goose bookkeeping table.
const migrationTableName = "schema_migrations"

// slogGooseLogger forwards goose output to slog. Fatalf does not exit; the
// error is returned to main instead.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// runMigrations applies a goose command to the base tables (users and
// geography). The catalog tables are not managed here.
func runMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	log := logger.With("component", "migrations", "command", command)

	if !isMigrationCommand(command) {
		return fmt.Errorf("unknown migration command: %s (expected up, down, status or version)", command)
	}

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database connection", "error", err)
		}
	}()

	goose.SetLogger(&slogGooseLogger{logger: log})
	goose.SetBaseFS(postgres.Migrations)
	goose.SetTableName(migrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	switch command {
	case "up":
		err = goose.UpContext(ctx, db, postgres.MigrationsDir)
	case "down":
		err = goose.DownContext(ctx, db, postgres.MigrationsDir)
	case "status":
		err = goose.StatusContext(ctx, db, postgres.MigrationsDir)
	default:
		err = goose.VersionContext(ctx, db, postgres.MigrationsDir)
	}
	if err != nil {
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}

	log.Info("Migration command executed successfully")
	return nil
}

func isMigrationCommand(command string) bool {
	switch command {
	case "up", "down", "status", "version":
		return true
	}
	return false
}
