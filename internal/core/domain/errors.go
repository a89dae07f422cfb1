package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateName      = errors.New("the merit name already exists")
	ErrDuplicateUsername  = errors.New("the username already exists")
	ErrUnauthenticated    = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrInvalidID is returned for identifiers that are not well-formed, before
// any store lookup happens.
var ErrInvalidID error = &ValidationError{Field: "id", Message: "The `id` is not valid", kind: ErrValidation}

// ValidationError describes a single rejected field. It unwraps to
// ErrValidation, or to ErrInvalidInput for registration payloads.
type ValidationError struct {
	Field   string
	Message string
	kind    error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.kind }

// NewValidationError builds a ValidationError of kind ErrValidation.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, kind: ErrValidation}
}

// NewInputError builds a ValidationError of kind ErrInvalidInput.
func NewInputError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, kind: ErrInvalidInput}
}

// MissingField reports a required field absent from a request body.
func MissingField(field string) *ValidationError {
	return NewValidationError(field, "Missing `"+field+"` in request body")
}
