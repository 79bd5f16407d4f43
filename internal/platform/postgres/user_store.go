package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

const userSelect = `
SELECT u.id, u.name, u.email, u.role, u.status, u.created_at, u.updated_at,
       u.phone_number, u.country_id, c.name AS country_name, c.iso_code AS country_iso_code
FROM users u
LEFT JOIN countries c ON c.id = u.country_id`

// PostgresUserStore implements store.UserStore.
type PostgresUserStore struct {
	db store.DBTX
}

// NewPostgresUserStore creates a user store on db.
func NewPostgresUserStore(db store.DBTX) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

var _ store.UserStore = (*PostgresUserStore)(nil)

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u           domain.User
		status      sql.NullString
		phone       sql.NullString
		countryID   uuid.NullUUID
		countryName sql.NullString
		countryISO  sql.NullString
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &status, &u.CreatedAt, &u.UpdatedAt,
		&phone, &countryID, &countryName, &countryISO)
	if err != nil {
		return nil, err
	}
	u.Status = status.String
	u.PhoneNumber = stringPtr(phone)
	if countryID.Valid {
		id := countryID.UUID
		u.CountryID = &id
		u.Country = &domain.CountryRef{ID: id, Name: countryName.String, ISOCode: stringPtr(countryISO)}
	}
	return &u, nil
}

// mapUserError maps not-found and duplicate errors to the user-specific sentinels.
func mapUserError(err error) error {
	err = MapError(err)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
	case errors.Is(err, store.ErrDuplicate):
		return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
	}
	return err
}

// Create implements store.UserStore.Create.
func (s *PostgresUserStore) Create(ctx context.Context, user domain.NewUser) (*domain.User, error) {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		user.Name, user.Email, user.PasswordHash, string(user.Role)).Scan(&id)
	if err != nil {
		return nil, mapUserError(err)
	}
	return s.GetByID(ctx, id)
}

// GetByID implements store.UserStore.GetByID.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, userSelect+` WHERE u.id = $1`, id))
	if err != nil {
		return nil, mapUserError(err)
	}
	return u, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, role
		FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role)
	if err != nil {
		return nil, mapUserError(err)
	}
	return &u, nil
}

// List implements store.UserStore.List.
func (s *PostgresUserStore) List(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx, userSelect+` ORDER BY u.created_at DESC`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, MapError(err)
		}
		users = append(users, *u)
	}
	return users, MapError(rows.Err())
}
