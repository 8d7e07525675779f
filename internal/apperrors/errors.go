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

// ErrConflict indicates the resource changed underneath the caller (stale version).
var ErrConflict = errors.New("resource was modified concurrently")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal marks unexpected infrastructure failures.
var ErrInternal = errors.New("internal error")

// Check lifecycle errors.
var (
	ErrInactive         = errors.New("checkbook is not active")
	ErrOutOfRange       = errors.New("check number outside the checkbook range")
	ErrDuplicateNumber  = errors.New("check number already used in this checkbook")
	ErrIneligibleCashIn = errors.New("check cannot be cashed before its due date has passed")
	ErrAlreadyCashed    = errors.New("check is already cashed")
	ErrHasDependents    = errors.New("resource still has dependent records")
)

// AppError carries an HTTP-ish status code together with the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewInternalServerError wraps err as an internal failure.
func NewInternalServerError(message string, err error) *AppError {
	if err == nil {
		err = ErrInternal
	}
	return NewAppError(500, message, err)
}
