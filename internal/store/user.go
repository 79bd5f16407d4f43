package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
)

// UserStore persists user accounts.
type UserStore interface {
	// Create inserts a user. Returns ErrEmailExists if the email is taken.
	Create(ctx context.Context, user domain.NewUser) (*domain.User, error)

	// GetByID returns a user with its country summary. Returns
	// ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail returns a user including its password hash. Returns
	// ErrUserNotFound if the email is unknown.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users, newest first.
	List(ctx context.Context) ([]domain.User, error)
}
