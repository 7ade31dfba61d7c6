package models

import "errors"

// ErrUserExists is returned by registration when the email is already taken
var ErrUserExists = errors.New("user already exists")

// ValidationError reports a missing or invalid field on a create request
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Field + ": " + e.Message
	}
	return "missing required field: " + e.Field
}

// NewValidationError creates a ValidationError for a missing field
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}
