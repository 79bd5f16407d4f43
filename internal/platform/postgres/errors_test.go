package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pacificaway/pacificaway-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		TableName:      "services",
		ColumnName:     "title",
		ConstraintName: "categories_name_key",
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "no rows", err: sql.ErrNoRows, target: store.ErrNotFound},
		{name: "unique violation", err: pgError("23505"), target: store.ErrDuplicate},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", pgError("23505")), target: store.ErrDuplicate},
		{name: "foreign key violation", err: pgError("23503"), target: store.ErrInvalidEntity},
		{name: "check violation", err: pgError("23514"), target: store.ErrInvalidEntity},
		{name: "not null violation", err: pgError("23502"), target: store.ErrInvalidEntity},
		{name: "malformed uuid", err: pgError("22P02"), target: store.ErrInvalidInput},
		{name: "malformed timestamp", err: pgError("22007"), target: store.ErrInvalidInput},
		{name: "timestamp overflow", err: pgError("22008"), target: store.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			assert.ErrorIs(t, mapped, tt.target)
			assert.ErrorIs(t, mapped, tt.err)
		})
	}
}

func TestMapError_Passthrough(t *testing.T) {
	assert.NoError(t, MapError(nil))

	plain := errors.New("connection reset")
	assert.Same(t, plain, MapError(plain))

	other := pgError("40001")
	assert.Equal(t, error(other), MapError(other))
}

func TestCodePredicates(t *testing.T) {
	assert.True(t, IsUniqueViolation(pgError("23505")))
	assert.False(t, IsUniqueViolation(pgError("23503")))
	assert.False(t, IsUniqueViolation(errors.New("23505")))

	assert.True(t, IsInvalidInput(pgError("22P02")))
	assert.True(t, IsInvalidInput(fmt.Errorf("wrapped: %w", pgError("22007"))))
	assert.False(t, IsInvalidInput(pgError("23505")))

	assert.True(t, isMissingExtensionSupport(pgError("42501")))
	assert.True(t, isMissingExtensionSupport(pgError("58P01")))
	assert.False(t, isMissingExtensionSupport(pgError("42P01")))
}

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, CheckRowsAffected(sqlmock.NewResult(0, 1), "service"))

	err := CheckRowsAffected(sqlmock.NewResult(0, 0), "service")
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = CheckRowsAffected(sqlmock.NewErrorResult(errors.New("driver")), "service")
	assert.ErrorContains(t, err, "failed to get rows affected")

	assert.Error(t, CheckRowsAffected(nil, "service"))
}
