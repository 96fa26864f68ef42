package config

import (
	"errors"
	"strings"
)

// ValidationError lists every problem found in a definition.
type ValidationError struct {
	Problems []string
}

// NewValidationError creates a validation error from one or more problems
func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "invalid form definition: " + strings.Join(e.Problems, "; ")
}

// IsValidationError reports whether err is or wraps a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
