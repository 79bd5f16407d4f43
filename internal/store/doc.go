// Package store defines the persistence interfaces of the marketplace and
// the sentinel errors every implementation reports. The services depend on
// these interfaces only; internal/platform/postgres provides the
// PostgreSQL implementations.
package store
