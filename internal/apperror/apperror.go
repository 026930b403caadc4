// Package apperror defines the application's error taxonomy.
//
// Services return these domain errors; the HTTP layer translates them into
// status codes with errors.Is/errors.As. Anything that doesn't wrap one of
// the sentinels below is treated as an internal failure.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// AppError carries a sentinel for classification plus a human-readable
// message for the response body.
type AppError struct {
	Err     error  // sentinel (ErrNotFound, ErrValidation, ErrConflict)
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that a record with the given id does not exist.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

// NoRecords reports an empty listing for endpoints that treat "nothing
// stored yet" as a not-found outcome.
func NoRecords(resource string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("no %s found", resource),
	}
}

// ValidationFailed reports a missing, mistyped or malformed input field.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Conflict reports a duplicate on a unique field. The message is exposed to
// the client verbatim.
func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}
