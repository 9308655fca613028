package model

import (
	"errors"
	"fmt"
)

// Error kinds shared by stores and services. The HTTP layer is the only place
// that maps them to status codes.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrAuthentication = errors.New("could not validate credentials")
	ErrInvalidInput   = errors.New("invalid input")
)

// Authentication failures. Callers outside the service layer only ever see
// ErrAuthentication; the concrete reason is kept for logs.
var (
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", ErrAuthentication)
	ErrInvalidAccessToken = fmt.Errorf("invalid access token: %w", ErrAuthentication)
	ErrTokenNotFound      = fmt.Errorf("refresh token not found: %w", ErrAuthentication)
	ErrTokenRevoked       = fmt.Errorf("refresh token revoked: %w", ErrAuthentication)
	ErrTokenExpired       = fmt.Errorf("refresh token expired: %w", ErrAuthentication)
)

// Error is a domain error carrying a message that is safe to show to API callers.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewNotFoundError returns an ErrNotFound kind error with a formatted message.
func NewNotFoundError(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewAlreadyExistsError returns an ErrAlreadyExists kind error with a formatted message.
func NewAlreadyExistsError(format string, args ...any) error {
	return &Error{Kind: ErrAlreadyExists, Message: fmt.Sprintf(format, args...)}
}

// NewValidationError returns an ErrInvalidInput kind error with a formatted message.
func NewValidationError(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}
