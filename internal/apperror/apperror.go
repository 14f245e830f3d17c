// Package apperror defines the application's domain error types.
//
// ERROR DESIGN:
// Errors raised deep inside a request (repository, service) carry a
// classification — validation failure, not found, conflict — but no HTTP
// knowledge. The HTTP boundary (internal/handler) matches on the
// classification with errors.Is and picks the status code. Nothing below the
// handler imports net/http.
package apperror

import (
	"errors"
	"strings"
)

// Sentinel errors. Every AppError wraps exactly one of these, so callers can
// classify any error in a chain with errors.Is(err, apperror.ErrNotFound) etc.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// FieldError describes a single field-level validation failure.
// The JSON tags matter: validation errors are serialized into the error
// envelope as a list of these.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the single error carrier used across layers.
//
//   - Err is one of the sentinel errors above (for errors.Is classification)
//   - Message is the human-readable description ("user not found", ...)
//   - Fields holds per-field details, set only for validation errors
type AppError struct {
	Err     error
	Message string
	Fields  []FieldError
}

// Error returns the message, or the joined field messages for validation
// errors that were built from a field list.
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the sentinel so errors.Is can walk the chain.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound returns an AppError for a missing resource.
// HTTP handlers map this to 404.
func NotFound(message string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// Conflict returns an AppError for a uniqueness-constraint violation.
// HTTP handlers map this to 409.
func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}

// ValidationFailed returns an AppError carrying one or more field-level
// errors. HTTP handlers map this to 400 and render the field list as the
// error description.
func ValidationFailed(fields ...FieldError) *AppError {
	return &AppError{
		Err:    ErrValidation,
		Fields: fields,
	}
}
