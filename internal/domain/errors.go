package domain

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation failed")

// ValidationError reports a caller-supplied value that broke a precondition.
// No state is changed when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
