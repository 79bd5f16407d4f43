package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a stocked product owned by one provider.
type Item struct {
	ID           uuid.UUID `json:"id"`
	ProviderID   uuid.UUID `json:"provider_id"`
	ProviderName string    `json:"provider_name,omitempty"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewItem carries the validated fields of an item being created.
type NewItem struct {
	ProviderID  uuid.UUID
	Name        string
	Description *string
	Price       float64
	Stock       int
}

// ItemChanges keeps every field whose pointer is nil. Unlike ServiceChanges
// it cannot express "clear this field": omitted and null look the same.
type ItemChanges struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Active      *bool
}
