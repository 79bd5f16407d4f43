package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Country is reference data identified optionally by a two-letter ISO code.
type Country struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ISOCode   *string   `json:"isoCode"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CountryRef is the embedded summary of a country.
type CountryRef struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	ISOCode *string   `json:"isoCode"`
}

// State belongs to exactly one country.
type State struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Code      *string     `json:"code"`
	CountryID uuid.UUID   `json:"countryId"`
	Country   *CountryRef `json:"country,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// StateRef is the embedded summary of a state.
type StateRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code *string   `json:"code"`
}

// City belongs to one country and optionally one state of that country.
type City struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CountryID uuid.UUID  `json:"countryId"`
	StateID   *uuid.UUID `json:"stateId"`
	Country   CountryRef `json:"country"`
	State     *StateRef  `json:"state,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// GeoFilter narrows state and city listings. Zero fields are ignored.
type GeoFilter struct {
	CountryID  *uuid.UUID
	CountryISO string
	StateID    *uuid.UUID
}

// MaxStateCodeLength bounds State.Code.
const MaxStateCodeLength = 10

var uuidPattern = regexp.MustCompile(
	`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`,
)

// ParseStrictUUID accepts only canonical RFC 4122 (versions 1-5) textual UUIDs.
func ParseStrictUUID(s string) (uuid.UUID, bool) {
	s = strings.TrimSpace(s)
	if !uuidPattern.MatchString(s) {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// NormalizeISO trims and upper-cases an ISO code.
func NormalizeISO(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
