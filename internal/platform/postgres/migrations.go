package postgres

import "embed"

// Migrations holds the goose migrations for the base tables (users and
// geography). The catalog tables are evolved at runtime by SchemaManager.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that holds the files.
const MigrationsDir = "migrations"
