package utils

import (
	"errors"
	"net/http"
)

// UnsupportedPathMessage is the body of every response for an unrecognized
// (method, path) pair.
const UnsupportedPathMessage = "Unsupported path"

type AppError struct {
	Code    int    // HTTP status code (e.g., 404, 500)
	Message string // User-facing message
	err     error  // Internal-facing error for logging purposes
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// --- Error Helper Functions ---

// NewRouteNotFoundError is returned for any request outside the routing table.
func NewRouteNotFoundError() *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: UnsupportedPathMessage,
	}
}

// NewInternalServerError creates a 500 Internal Server Error.
func NewInternalServerError(message string, originalError error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		err:     originalError,
	}
}

// AsAppError converts any error into an AppError, treating unknown errors as
// internal failures.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalServerError("Internal server error", err)
}
