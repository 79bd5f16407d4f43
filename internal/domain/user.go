package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the coarse permission class of a user.
type Role string

// Known roles.
const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	default:
		return false
	}
}

// User is a registered account. Name is the full display name; first and
// last names are derived from it on output.
type User struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	Status       string      `json:"status"`
	PhoneNumber  *string     `json:"phoneNumber,omitempty"`
	CountryID    *uuid.UUID  `json:"countryId,omitempty"`
	Country      *CountryRef `json:"country,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// NewUser carries a validated registration.
type NewUser struct {
	Name         string
	Email        string
	PasswordHash string
	Role         Role
}

// collapseSpaces trims s and folds internal whitespace runs into one space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ResolveFullName prefers an explicit first/last pair and falls back to name.
func ResolveFullName(name, firstName, lastName string) string {
	first, last := collapseSpaces(firstName), collapseSpaces(lastName)
	if first != "" || last != "" {
		return strings.TrimSpace(first + " " + last)
	}
	return collapseSpaces(name)
}

// SplitName splits a full name into the first word and the remainder.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
