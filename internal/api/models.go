package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/service"
)

// RegisterRequest is the body of POST /auth/register. The name may be sent
// whole or as a first/last pair.
type RegisterRequest struct {
	Name      string      `json:"name"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"    validate:"required"`
	Password  string      `json:"password" validate:"required"`
	Role      domain.Role `json:"role"     validate:"required"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// TokenResponse is returned by login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse exposes a user with the display name split in two.
type UserResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	FirstName   *string            `json:"firstName"`
	LastName    *string            `json:"lastName"`
	Email       string             `json:"email"`
	Role        domain.Role        `json:"role"`
	Status      string             `json:"status"`
	PhoneNumber *string            `json:"phoneNumber"`
	CountryID   *uuid.UUID         `json:"countryId"`
	Country     *domain.CountryRef `json:"country"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func userToResponse(u domain.User) UserResponse {
	resp := UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Status:      u.Status,
		PhoneNumber: u.PhoneNumber,
		CountryID:   u.CountryID,
		Country:     u.Country,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	first, last := domain.SplitName(u.Name)
	if first != "" {
		resp.FirstName = &first
	}
	if last != "" {
		resp.LastName = &last
	}
	return resp
}

func usersToResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out
}

// ServiceRequest is the body of POST and PATCH /services. Absent keys are
// left alone on update; explicit nulls clear the field.
type ServiceRequest struct {
	Title       domain.Optional[string]  `json:"title"`
	Name        domain.Optional[string]  `json:"name"`
	Description domain.Optional[string]  `json:"description"`
	CategoryID  domain.Optional[string]  `json:"categoryId"`
	Category    domain.Optional[string]  `json:"category"`
	Price       domain.Optional[float64] `json:"price"`
	Active      domain.Optional[bool]    `json:"active"`
}

func (req ServiceRequest) toInput() service.ServiceInput {
	return service.ServiceInput(req)
}

// ServiceResponse exposes the stored title under both "name" and "title".
type ServiceResponse struct {
	ID           uuid.UUID  `json:"id"`
	ProviderID   uuid.UUID  `json:"provider_id"`
	ProviderName string     `json:"provider_name"`
	CategoryID   *uuid.UUID `json:"category_id"`
	Category     *string    `json:"category"`
	Name         string     `json:"name"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	Price        float64    `json:"price"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func serviceToResponse(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:           s.ID,
		ProviderID:   s.ProviderID,
		ProviderName: s.ProviderName,
		CategoryID:   s.CategoryID,
		Category:     s.CategoryName,
		Name:         s.Title,
		Title:        s.Title,
		Description:  s.Description,
		Price:        s.Price,
		Active:       s.Active,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func servicesToResponse(services []domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, serviceToResponse(s))
	}
	return out
}

// ItemRequest is the body of POST and PATCH /items. Null and absent mean
// the same thing here.
type ItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Active      *bool    `json:"active"`
}

// CategoryRequest is the body of POST and PATCH /categories.
type CategoryRequest struct {
	Name        domain.Optional[string] `json:"name"`
	Description domain.Optional[string] `json:"description"`
}

// BookingRequest is the body of POST /bookings.
type BookingRequest struct {
	ServiceID string  `json:"service_id" validate:"required"`
	Date      string  `json:"date"       validate:"required"`
	Notes     *string `json:"notes"`
}

// BookingStatusRequest is the body of PATCH /bookings/{id}/status.
type BookingStatusRequest struct {
	Status domain.BookingStatus `json:"status"`
}

// CountryRequest is the body of POST /countries.
type CountryRequest struct {
	Name    string `json:"name"`
	ISOCode string `json:"isoCode"`
}

// StateRequest is the body of POST /states.
type StateRequest struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	CountryID  string `json:"countryId"`
	CountryISO string `json:"countryIso"`
}

// CityRequest is the body of POST /cities.
type CityRequest struct {
	Name       string `json:"name"`
	StateID    string `json:"stateId"`
	CountryID  string `json:"countryId"`
	CountryISO string `json:"countryIso"`
}
