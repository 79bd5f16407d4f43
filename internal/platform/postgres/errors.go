package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

// PostgreSQL error codes
const (
	uniqueViolationCode       = "23505"
	foreignKeyViolationCode   = "23503"
	checkViolationCode        = "23514"
	notNullViolationCode      = "23502"
	invalidTextRepresentation = "22P02"
	invalidDatetimeFormat     = "22007"
	datetimeFieldOverflow     = "22008"
	insufficientPrivilege     = "42501"
	undefinedFile             = "58P01"
)

// MapError translates a database error into one of the store sentinel
// errors, wrapping the original so callers can still inspect it.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolationCode:
		return fmt.Errorf("%w: %s: %w", store.ErrDuplicate, pgErr.ConstraintName, err)
	case foreignKeyViolationCode, checkViolationCode:
		return fmt.Errorf("%w: constraint %s: %w", store.ErrInvalidEntity, pgErr.ConstraintName, err)
	case notNullViolationCode:
		return fmt.Errorf("%w: column %s: %w", store.ErrInvalidEntity, pgErr.ColumnName, err)
	case invalidTextRepresentation, invalidDatetimeFormat, datetimeFieldOverflow:
		return fmt.Errorf("%w: %w", store.ErrInvalidInput, err)
	}
	return err
}

func hasCode(err error, codes ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	for _, c := range codes {
		if pgErr.Code == c {
			return true
		}
	}
	return false
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolationCode)
}

// IsInvalidInput reports whether PostgreSQL rejected a value's text form
// (malformed uuid, unparseable timestamp).
func IsInvalidInput(err error) bool {
	return hasCode(err, invalidTextRepresentation, invalidDatetimeFormat, datetimeFieldOverflow)
}

// isMissingExtensionSupport reports the errors CREATE EXTENSION raises when
// the role lacks privileges or the extension is not installed on the server.
func isMissingExtensionSupport(err error) bool {
	return hasCode(err, insufficientPrivilege, undefinedFile)
}

// CheckRowsAffected returns store.ErrNotFound when result touched no rows.
func CheckRowsAffected(result sql.Result, entityName string) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", store.ErrNotFound, entityName)
	}
	return nil
}
