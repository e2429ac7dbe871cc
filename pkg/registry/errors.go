package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrAgentNotFound indicates the agent id is not registered.
	ErrAgentNotFound = errors.New("agent not found")

	// ErrAgentExists indicates a registration collision on id or name.
	ErrAgentExists = errors.New("agent already registered")
)

// ValidationError reports an invalid field on a registration or update.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
