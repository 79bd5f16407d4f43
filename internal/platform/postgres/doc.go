// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx driver. It also owns the catalog schema routine
// (SchemaManager), the embedded goose migrations for the base tables and the
// translation of SQLSTATE codes into store sentinels.
package postgres
