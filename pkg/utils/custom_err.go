package utils

import (
	"errors"
	"strings"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("resource not found")
	ErrSessionClosed      = errors.New("session already closed")
	ErrTooManyAttempts    = errors.New("too many attempts")
	ErrDatabaseError      = errors.New("database error")
)

// ValidationError carries field-level messages for a rejected request body.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

func NewValidationError(fields []string) *ValidationError {
	return &ValidationError{Fields: fields}
}
