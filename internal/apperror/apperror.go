package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain error taxonomy. Handlers map these to
// HTTP status codes with errors.Is — see internal/handler/response.go.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrDuplicate    = errors.New("duplicate")
	ErrUnauthorized = errors.New("unauthorized")

	// Provider errors cover the external text-generation capability.
	// Misconfigured = no credential, detected before any network call.
	// Unavailable = the call was attempted and failed (or returned nothing).
	ErrProviderMisconfigured = errors.New("provider misconfigured")
	ErrProviderUnavailable   = errors.New("provider unavailable")
)

type AppError struct {
	Err     error  // actual error
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Duplicate returns an AppError for a uniqueness violation, e.g. a second
// registration with an email that is already taken. Handlers map this to
// 400 Bad Request (matching the original API, which used 400 rather than 409).
func Duplicate(resource, key string) *AppError {
	return &AppError{
		Err:     ErrDuplicate,
		Message: fmt.Sprintf("%s already exists: %s", resource, key),
	}
}

// Unauthorized returns an AppError for failed authentication.
// HTTP handlers map this to 401.
func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}

// ProviderMisconfigured reports that the text-generation provider has no
// credential configured. Surfaced only when generation is requested.
func ProviderMisconfigured(message string) *AppError {
	return &AppError{
		Err:     ErrProviderMisconfigured,
		Message: message,
	}
}

// ProviderUnavailable reports that the text-generation call failed.
// The underlying provider error is kept in the chain for logs but its
// text must never reach the client.
func ProviderUnavailable(message string, cause error) *AppError {
	err := error(ErrProviderUnavailable)
	if cause != nil {
		// Both errors stay in the chain so errors.Is matches either.
		err = fmt.Errorf("%w: %w", ErrProviderUnavailable, cause)
	}
	return &AppError{
		Err:     err,
		Message: message,
	}
}
