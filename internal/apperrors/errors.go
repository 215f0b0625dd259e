package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is known but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource is not in a state that allows the action
// (for example it is already soft-deleted).
var ErrConflict = errors.New("conflict")

// AppError carries the HTTP status and the client facing message of a failure.
// Err is the underlying cause; it is one of the sentinels above for errors built
// through the New*Error helpers so errors.Is keeps working across layers.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewValidationFailedError wraps a validation failure while keeping its cause.
func NewValidationFailedError(message string, err error) *AppError {
	if err == nil {
		err = ErrValidation
	}
	return NewAppError(http.StatusBadRequest, message, errors.Join(ErrValidation, err))
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

// NewConflictError reports a state conflict. API clients receive 400 Bad Request
// for conflicts, matching the rest of the validation failures.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrConflict)
}

// NewDuplicateError reports a uniqueness clash (email, username) as 400.
func NewDuplicateError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrDuplicate)
}

func NewInternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}

func NewGatewayTimeoutError(message string) *AppError {
	return NewAppError(http.StatusGatewayTimeout, message, nil)
}
