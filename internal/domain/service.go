package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service is a bookable offering owned by exactly one provider.
// The stored column is "title"; the API also exposes it as "name".
type Service struct {
	ID           uuid.UUID  `json:"id"`
	ProviderID   uuid.UUID  `json:"provider_id"`
	ProviderName string     `json:"provider_name"`
	CategoryID   *uuid.UUID `json:"category_id"`
	CategoryName *string    `json:"category"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	Price        float64    `json:"price"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewService carries the validated fields of a service being created.
type NewService struct {
	ProviderID  uuid.UUID
	Title       string
	Description *string
	CategoryID  *uuid.UUID
	Price       float64
}

// ServiceChanges is a sparse update to a service. Provider ownership is not
// part of it: the owner never changes after creation.
type ServiceChanges struct {
	Title       Optional[string]
	Description Optional[string]
	CategoryID  Optional[uuid.UUID]
	Price       Optional[float64]
	Active      Optional[bool]
}

// Empty reports whether no field was touched.
func (c ServiceChanges) Empty() bool {
	return !c.Title.IsSet() && !c.Description.IsSet() && !c.CategoryID.IsSet() &&
		!c.Price.IsSet() && !c.Active.IsSet()
}
