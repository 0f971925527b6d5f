package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrSingletonExists       = errors.New("singleton row already exists")

	// Authentication errors (admin surface)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Content errors. Each wraps ErrResourceNotFound (or
// ErrResourceAlreadyExists) so errors.Is keeps working at the
// middleware layer.
var (
	ErrSettingsNotFound     = fmt.Errorf("site settings not configured: %w", ErrResourceNotFound)
	ErrAboutPageNotFound    = fmt.Errorf("about page not configured: %w", ErrResourceNotFound)
	ErrLeaderNotFound       = fmt.Errorf("leader not found: %w", ErrResourceNotFound)
	ErrEventNotFound        = fmt.Errorf("event not found: %w", ErrResourceNotFound)
	ErrNewsNotFound         = fmt.Errorf("news post not found: %w", ErrResourceNotFound)
	ErrProjectNotFound      = fmt.Errorf("project not found: %w", ErrResourceNotFound)
	ErrResearchAreaNotFound = fmt.Errorf("research area not found: %w", ErrResourceNotFound)
	ErrCategoryNotFound     = fmt.Errorf("resource category not found: %w", ErrResourceNotFound)
	ErrPartnerNotFound      = fmt.Errorf("partner not found: %w", ErrResourceNotFound)
	ErrCommunityNotFound    = fmt.Errorf("community not found: %w", ErrResourceNotFound)
	ErrHeroSlideNotFound    = fmt.Errorf("hero slide not found: %w", ErrResourceNotFound)
	ErrAlbumNotFound        = fmt.Errorf("album not found: %w", ErrResourceNotFound)
	ErrSessionNotFound      = fmt.Errorf("session not found: %w", ErrResourceNotFound)
	ErrAdminNotFound        = fmt.Errorf("admin user not found: %w", ErrResourceNotFound)
	ErrLinkTitleTaken       = fmt.Errorf("link title already used in this category: %w", ErrResourceAlreadyExists)
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
