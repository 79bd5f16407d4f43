package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

// Allowed booking statuses. The intended flow is
// pending -> confirmed|cancelled -> completed, but any allowed value may
// currently replace any other.
const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the allowed statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	default:
		return false
	}
}

// Booking links a customer to a service on a date.
type Booking struct {
	ID          uuid.UUID     `json:"id"`
	ServiceID   uuid.UUID     `json:"service_id"`
	ServiceName *string       `json:"service_name,omitempty"`
	CustomerID  uuid.UUID     `json:"customer_id"`
	Date        time.Time     `json:"date"`
	Status      BookingStatus `json:"status"`
	Notes       *string       `json:"notes"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewBooking carries a booking request. ServiceID and Date are kept as the
// client sent them; the store rejects malformed values.
type NewBooking struct {
	ServiceID  string
	CustomerID uuid.UUID
	Date       string
	Notes      *string
}
