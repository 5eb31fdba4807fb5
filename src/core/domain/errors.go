package domain

import (
	"errors"
	"fmt"
)

// Domain error types for consistent error handling across the application.
// These errors represent business rule violations and domain constraints.

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingProperty is the validation sub-kind for an absent required property.
	ErrMissingProperty = fmt.Errorf("%w: missing property", ErrInvalidInput)

	// ErrWrongType is the validation sub-kind for a property of the wrong type.
	ErrWrongType = fmt.Errorf("%w: wrong type", ErrInvalidInput)

	// ErrUnauthorized is returned when authentication is required but not provided.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the user lacks permission for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict is returned when there's a conflict with the current state.
	ErrConflict = errors.New("conflict")
)

// DomainError wraps a base error with additional context.
// It provides a standard way to add details to domain errors.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrNotFound)
	Base error

	// Code is a stable, machine-readable discriminator
	// (e.g., NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY).
	Code string

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Code:    "NOT_FOUND",
		Message: resource,
	}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(code, field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Code:    code,
		Message: message,
		Field:   field,
	}
}

// NewMissingPropertyError reports an absent required property of an entity payload.
func NewMissingPropertyError(entity, field string) *DomainError {
	return &DomainError{
		Base:    ErrMissingProperty,
		Code:    entity + ".NOT_CONTAIN_NEEDED_PROPERTY",
		Message: "required property is missing",
		Field:   field,
	}
}

// NewWrongTypeError reports a property whose value has the wrong type.
func NewWrongTypeError(entity, field string) *DomainError {
	return &DomainError{
		Base:    ErrWrongType,
		Code:    entity + ".NOT_MEET_DATA_TYPE_SPECIFICATION",
		Message: "property does not meet data type specification",
		Field:   field,
	}
}

// NewConflictError creates a conflict error with context.
func NewConflictError(message string) *DomainError {
	return &DomainError{
		Base:    ErrConflict,
		Code:    "CONFLICT",
		Message: message,
	}
}

// NewForbiddenError creates a forbidden error with context.
func NewForbiddenError(message string) *DomainError {
	return &DomainError{
		Base:    ErrForbidden,
		Code:    "FORBIDDEN",
		Message: message,
	}
}

// NewUnauthorizedError creates an unauthorized error with context.
func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{
		Base:    ErrUnauthorized,
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error of any sub-kind.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMissingProperty checks if an error reports an absent required property.
func IsMissingProperty(err error) bool {
	return errors.Is(err, ErrMissingProperty)
}

// IsWrongType checks if an error reports a wrongly-typed property.
func IsWrongType(err error) bool {
	return errors.Is(err, ErrWrongType)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnauthorized checks if an error is unauthorized.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// CodeOf returns the discriminator code of a domain error, or "" for other errors.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
