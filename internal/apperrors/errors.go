package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller's role may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrArithmetic indicates an amount that would drive a ledger value non-positive or negative.
// It wraps ErrValidation so callers can treat it as a rejected command.
var ErrArithmetic = fmt.Errorf("%w: arithmetic guard", ErrValidation)

// ErrPersistence indicates a failure reading or writing durable storage.
var ErrPersistence = errors.New("persistence failure")

// ErrExternalService indicates that an external collaborator (e.g. AI text generation) failed.
var ErrExternalService = errors.New("external service failure")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
