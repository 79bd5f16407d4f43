package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
)

// BookingStore persists bookings.
type BookingStore interface {
	// Create inserts a pending booking. Malformed service ids or dates are
	// reported as ErrInvalidInput.
	Create(ctx context.Context, booking domain.NewBooking) (*domain.Booking, error)

	// ListByCustomer returns the customer's bookings with the service title,
	// newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error)

	// UpdateStatus overwrites the status of booking id. Returns ErrNotFound
	// if it does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error)
}
