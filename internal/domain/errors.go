package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidPriority is returned when a card priority is not one of the known values.
	ErrInvalidPriority = errors.New("invalid card priority")

	// ErrInvalidStatus is returned when a card status is not one of the known values.
	ErrInvalidStatus = errors.New("invalid card status")

	// ErrInvalidPosition is returned when a list or card position is negative.
	ErrInvalidPosition = errors.New("position must not be negative")

	// ErrEmptyPatch is returned when a partial update carries no fields.
	ErrEmptyPatch = errors.New("no fields to update")
)

// ValidationError describes a single invalid field.
// It wraps an underlying sentinel so callers can match with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel error. If no sentinel was given,
// ErrValidation is returned so every ValidationError matches it.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// Is reports ErrValidation for every ValidationError, in addition to the
// wrapped sentinel handled by Unwrap.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
