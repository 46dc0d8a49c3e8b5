package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidState is returned when an operation targets an entity in the
	// wrong status (e.g. completing a PENDING stage, starting a non-DRAFT
	// pipeline). Terminal states are immutable.
	ErrInvalidState = errors.New("invalid state for operation")

	// ErrPreconditionFailed is returned when a claim's precondition does not
	// hold — the stage is not PENDING, its predecessor is unfinished, the
	// pipeline is not RUNNING, or another agent won the race. Callers must
	// treat it as benign and re-read state before retrying.
	ErrPreconditionFailed = errors.New("precondition failed")
)

// Public error codes surfaced to callers.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidState       = "INVALID_STATE"
	CodePreconditionFailed = "PRECONDITION_FAILED"
	CodeInternal           = "INTERNAL"
)

// Code maps an error to its public error code.
func Code(err error) string {
	switch {
	case IsValidationError(err):
		return CodeInvalidInput
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrPreconditionFailed):
		return CodePreconditionFailed
	default:
		return CodeInternal
	}
}

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
