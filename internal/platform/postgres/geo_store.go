package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

// PostgresGeoStore implements store.GeoStore.
type PostgresGeoStore struct {
	db store.DBTX
}

// NewPostgresGeoStore creates a geography store on db.
func NewPostgresGeoStore(db store.DBTX) *PostgresGeoStore {
	return &PostgresGeoStore{db: db}
}

var _ store.GeoStore = (*PostgresGeoStore)(nil)

const stateSelect = `
SELECT s.id, s.name, s.code, s.country_id, s.created_at, s.updated_at,
       c.name AS country_name, c.iso_code AS country_iso_code
FROM states s
JOIN countries c ON c.id = s.country_id`

const citySelect = `
SELECT ci.id, ci.name, ci.country_id, ci.state_id, ci.created_at, ci.updated_at,
       c.name AS country_name, c.iso_code AS country_iso_code,
       s.name AS state_name, s.code AS state_code
FROM cities ci
JOIN countries c ON c.id = ci.country_id
LEFT JOIN states s ON s.id = ci.state_id`

// filterClause renders the WHERE clause for a GeoFilter. prefix is the alias
// of the table carrying country_id and state_id.
func filterClause(prefix string, f domain.GeoFilter) (string, []any) {
	var conds []string
	var args []any
	if f.CountryID != nil {
		args = append(args, *f.CountryID)
		conds = append(conds, fmt.Sprintf("%s.country_id = $%d", prefix, len(args)))
	}
	if f.CountryISO != "" {
		args = append(args, f.CountryISO)
		conds = append(conds, fmt.Sprintf("UPPER(c.iso_code) = $%d", len(args)))
	}
	if f.StateID != nil {
		args = append(args, *f.StateID)
		conds = append(conds, fmt.Sprintf("%s.state_id = $%d", prefix, len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanCountry(row rowScanner) (*domain.Country, error) {
	var c domain.Country
	var iso sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &iso, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.ISOCode = stringPtr(iso)
	return &c, nil
}

func scanState(row rowScanner) (*domain.State, error) {
	var s domain.State
	var code, countryName, countryISO sql.NullString
	err := row.Scan(&s.ID, &s.Name, &code, &s.CountryID, &s.CreatedAt, &s.UpdatedAt,
		&countryName, &countryISO)
	if err != nil {
		return nil, err
	}
	s.Code = stringPtr(code)
	if countryName.Valid {
		s.Country = &domain.CountryRef{ID: s.CountryID, Name: countryName.String, ISOCode: stringPtr(countryISO)}
	}
	return &s, nil
}

func scanCity(row rowScanner) (*domain.City, error) {
	var c domain.City
	var stateID uuid.NullUUID
	var countryName, countryISO, stateName, stateCode sql.NullString
	err := row.Scan(&c.ID, &c.Name, &c.CountryID, &stateID, &c.CreatedAt, &c.UpdatedAt,
		&countryName, &countryISO, &stateName, &stateCode)
	if err != nil {
		return nil, err
	}
	c.Country = domain.CountryRef{ID: c.CountryID, Name: countryName.String, ISOCode: stringPtr(countryISO)}
	if stateID.Valid {
		id := stateID.UUID
		c.StateID = &id
		c.State = &domain.StateRef{ID: id, Name: stateName.String, Code: stringPtr(stateCode)}
	}
	return &c, nil
}

// ListCountries implements store.GeoStore.ListCountries.
func (s *PostgresGeoStore) ListCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, iso_code, created_at, updated_at FROM countries ORDER BY name ASC`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	countries := []domain.Country{}
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, MapError(err)
		}
		countries = append(countries, *c)
	}
	return countries, MapError(rows.Err())
}

// CreateCountry implements store.GeoStore.CreateCountry.
func (s *PostgresGeoStore) CreateCountry(ctx context.Context, name string, isoCode *string) (*domain.Country, error) {
	c, err := scanCountry(s.db.QueryRowContext(ctx, `
		INSERT INTO countries (name, iso_code) VALUES ($1, $2)
		RETURNING id, name, iso_code, created_at, updated_at`, name, nullable(isoCode)))
	if err != nil {
		return nil, MapError(err)
	}
	return c, nil
}

// CountryIDByISO implements store.GeoStore.CountryIDByISO.
func (s *PostgresGeoStore) CountryIDByISO(ctx context.Context, iso string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, `SELECT id FROM countries WHERE iso_code = $1`, iso).Scan(&id)
	if err != nil {
		return uuid.Nil, MapError(err)
	}
	return id, nil
}

// ListStates implements store.GeoStore.ListStates.
func (s *PostgresGeoStore) ListStates(ctx context.Context, filter domain.GeoFilter) ([]domain.State, error) {
	where, args := filterClause("s", domain.GeoFilter{CountryID: filter.CountryID, CountryISO: filter.CountryISO})
	rows, err := s.db.QueryContext(ctx, stateSelect+where+` ORDER BY c.name ASC, s.name ASC`, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	states := []domain.State{}
	for rows.Next() {
		st, err := scanState(rows)
		if err != nil {
			return nil, MapError(err)
		}
		states = append(states, *st)
	}
	return states, MapError(rows.Err())
}

// CreateState implements store.GeoStore.CreateState.
func (s *PostgresGeoStore) CreateState(
	ctx context.Context,
	name string,
	code *string,
	countryID uuid.UUID,
) (*domain.State, error) {
	st, err := scanState(s.db.QueryRowContext(ctx, `
		WITH inserted AS (
		  INSERT INTO states (name, code, country_id)
		  VALUES ($1, $2, $3)
		  RETURNING id, name, code, country_id, created_at, updated_at
		)
		SELECT i.id, i.name, i.code, i.country_id, i.created_at, i.updated_at,
		       c.name AS country_name, c.iso_code AS country_iso_code
		FROM inserted i
		JOIN countries c ON c.id = i.country_id`, name, nullable(code), countryID))
	if err != nil {
		return nil, MapError(err)
	}
	return st, nil
}

// GetState implements store.GeoStore.GetState.
func (s *PostgresGeoStore) GetState(ctx context.Context, id uuid.UUID) (*domain.State, error) {
	st, err := scanState(s.db.QueryRowContext(ctx, stateSelect+` WHERE s.id = $1`, id))
	if err != nil {
		return nil, MapError(err)
	}
	return st, nil
}

// ListCities implements store.GeoStore.ListCities.
func (s *PostgresGeoStore) ListCities(ctx context.Context, filter domain.GeoFilter) ([]domain.City, error) {
	where, args := filterClause("ci", filter)
	rows, err := s.db.QueryContext(ctx,
		citySelect+where+` ORDER BY c.name ASC, s.name NULLS FIRST, ci.name ASC`, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	cities := []domain.City{}
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, MapError(err)
		}
		cities = append(cities, *c)
	}
	return cities, MapError(rows.Err())
}

// CreateCity implements store.GeoStore.CreateCity.
func (s *PostgresGeoStore) CreateCity(
	ctx context.Context,
	name string,
	countryID uuid.UUID,
	stateID *uuid.UUID,
) (*domain.City, error) {
	c, err := scanCity(s.db.QueryRowContext(ctx, `
		WITH inserted AS (
		  INSERT INTO cities (name, country_id, state_id)
		  VALUES ($1, $2, $3)
		  RETURNING id, name, country_id, state_id, created_at, updated_at
		)
		SELECT i.id, i.name, i.country_id, i.state_id, i.created_at, i.updated_at,
		       c.name AS country_name, c.iso_code AS country_iso_code,
		       s.name AS state_name, s.code AS state_code
		FROM inserted i
		JOIN countries c ON c.id = i.country_id
		LEFT JOIN states s ON s.id = i.state_id`, name, countryID, nullable(stateID)))
	if err != nil {
		return nil, MapError(err)
	}
	return c, nil
}
