package errors

import (
	"errors"
	"fmt"
)

var (
	// Card validation errors
	ErrInvalidPan        = errors.New("invalid card number")
	ErrInvalidExpiry     = errors.New("invalid or elapsed expiry date")
	ErrInvalidCvv        = errors.New("invalid cvv")
	ErrInvalidHolderName = errors.New("invalid holder name")
	ErrDuplicateCard     = errors.New("card already on file")

	// QR decode errors
	ErrUnrecognizedScheme = errors.New("unrecognized qr scheme")
	ErrUnsupportedVersion = errors.New("unsupported qr version")
	ErrMalformedField     = errors.New("malformed qr field")

	// Vault errors
	ErrVaultNotFound    = errors.New("tokenization vault not found")
	ErrVaultUnavailable = errors.New("tokenization vault unavailable")
	ErrVaultRejected    = errors.New("card rejected by vault")
	ErrVaultTimeout     = errors.New("vault request timeout")

	// Directory errors
	ErrCapabilityNotFound = errors.New("account capability record not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidInput     = errors.New("invalid input")
)

// DomainError wraps errors with additional context
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
