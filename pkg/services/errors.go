package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// TransitionError reports a state change the lifecycle table does not permit.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition: %s -> %s", e.Entity, e.From, e.To)
}

// ConflictError reports an optimistic-lock failure: the row moved between
// read and write.
type ConflictError struct {
	Entity          string
	ID              string
	ExpectedVersion int
	ActualVersion   int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("concurrent modification of %s %s: expected version %d, found %d",
		e.Entity, e.ID, e.ExpectedVersion, e.ActualVersion)
}

// QuotaError reports a tenant resource limit being hit.
type QuotaError struct {
	Resource string
	Limit    int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("quota exceeded for %s (limit %d)", e.Resource, e.Limit)
}

// CapabilityError reports a capability an agent type cannot legally claim
// or a task requirement no agent type covers.
type CapabilityError struct {
	AgentType  string
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("capability %q is not valid for agent type %q", e.Capability, e.AgentType)
}
