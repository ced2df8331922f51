package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/surveyor-service/internal/errors"
	"github.com/SAP-F-2025/surveyor-service/internal/instruments"
	"github.com/SAP-F-2025/surveyor-service/internal/repositories"
	"github.com/SAP-F-2025/surveyor-service/internal/scenarios"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// ErrInvalidConfiguration wraps every construction-time failure of a survey
	ErrInvalidConfiguration = errors.New("invalid survey configuration")

	// Administration specific errors
	ErrAdministrationNotFound = errors.New("administration not found")
	ErrUnsupportedFormat      = errors.New("unsupported export format")
	ErrAnswerCountMismatch    = errors.New("answer count does not match question count")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func invalidConfiguration(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAdministrationNotFound) ||
		errors.Is(err, instruments.ErrUnknownInstrument) ||
		errors.Is(err, scenarios.ErrUnknownScenario) ||
		repositories.IsNotFoundError(err)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrInvalidConfiguration) ||
		errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrAnswerCountMismatch) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}
