package domain

import "errors"

// ErrValidation is the sentinel every ValidationError unwraps to.
var ErrValidation = errors.New("validation failed")

// ValidationError reports input that was rejected before reaching storage.
// Message is stable and safe to return to clients verbatim.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given client-facing message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Validation failures shared by several resources.
var (
	ErrNoUpdates           = NewValidationError("No updates provided")
	ErrNameRequired        = NewValidationError("name required")
	ErrNameAndPriceMissing = NewValidationError("name and price required")
	ErrCategoryNotFound    = NewValidationError("Category not found")
	ErrInvalidStatus       = NewValidationError("Invalid status")
)

// ErrUnauthorized is returned when no acting identity is available.
var ErrUnauthorized = errors.New("unauthorized operation")
