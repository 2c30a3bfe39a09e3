package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrUnknownStage is returned for a status code or navigation index
	// outside the five argumentation stages. It is a data error and is never
	// mapped to a fallback stage.
	ErrUnknownStage = errors.New("unknown stage")

	// ErrInvalidReference is the umbrella for opaque tokens that cannot be
	// resolved. Codec errors wrap it so callers can treat them uniformly.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrCorruptRecord marks a stored row that violates a domain rule, such
	// as a persisted status outside the five stages. It is a server fault,
	// never the caller's.
	ErrCorruptRecord = errors.New("corrupt record")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// IsPermanent reports whether err is a domain-level outcome that repeating
// the same call cannot change.
func IsPermanent(err error) bool {
	for _, target := range []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation, ErrUnauthorized,
		ErrForbidden, ErrConflict, ErrUnknownStage, ErrInvalidReference,
		ErrCorruptRecord,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
