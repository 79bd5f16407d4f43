package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category groups services. Names are globally unique and case-sensitive.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryChanges is a sparse update to a category.
type CategoryChanges struct {
	Name        Optional[string]
	Description Optional[string]
}

// Empty reports whether no field was touched.
func (c CategoryChanges) Empty() bool {
	return !c.Name.IsSet() && !c.Description.IsSet()
}

// Normalize trims a touched name and rejects the change set when the name is
// null or blank, or when nothing was touched at all.
func (c CategoryChanges) Normalize() (CategoryChanges, error) {
	if c.Name.IsSet() {
		name := NormalizeName(c.Name.Value())
		if c.Name.IsNull() || name == "" {
			return CategoryChanges{}, ErrNameRequired
		}
		c.Name = Some(name)
	}
	if c.Empty() {
		return CategoryChanges{}, ErrNoUpdates
	}
	return c, nil
}

// NormalizeName trims surrounding whitespace from a category name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
