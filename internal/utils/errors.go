package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds shared by services and handlers. Match them with errors.Is.
var (
	ErrValidation = errors.New("VALIDATION_ERROR")
	ErrNotFound   = errors.New("NOT_FOUND")
	ErrConflict   = errors.New("CONFLICT")
)

// AppError is a failure the caller can act on. Message is safe to show to the
// operator and is returned verbatim in the response body.
type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Kind }

// Status maps the error kind to an HTTP status code.
func (e *AppError) Status() int {
	switch e.Kind {
	case ErrValidation:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError reports a missing or malformed field.
func NewValidationError(message string) *AppError {
	return &AppError{Kind: ErrValidation, Message: message}
}

// NewNotFoundError reports a missing record or referenced parent.
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: message}
}

// NewConflictError reports a duplicate slug or a delete blocked by dependents.
func NewConflictError(format string, args ...any) *AppError {
	return &AppError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// AsAppError unwraps err into an *AppError when it carries one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
