// Package apperrors defines the error taxonomy shared by services and
// handlers. Services return these; handlers translate them to HTTP status
// codes at the boundary.
package apperrors

import "errors"

var (
	// ErrEmailTaken signals a duplicate registration for an already used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
)

// ValidationError reports malformed or missing input. Required carries the
// field names a missing-field failure expects; Fields carries the fields a
// store-level schema check rejected.
type ValidationError struct {
	Message  string
	Required []string
	Fields   []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}
