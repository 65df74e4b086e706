// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Income source domain errors.
var (
	// ErrIncomeSourceNotFound is returned when an income source is not found in the system.
	ErrIncomeSourceNotFound = errors.New("income source not found")

	// ErrIncomeSourceNameRequired is returned when the income source name is empty.
	ErrIncomeSourceNameRequired = errors.New("income source name is required")

	// ErrIncomeSourceNameTooLong is returned when the income source name exceeds the maximum length.
	ErrIncomeSourceNameTooLong = errors.New("income source name too long")

	// ErrUnauthorizedSourceAccess is returned when user is not authorized to access an income source.
	ErrUnauthorizedSourceAccess = errors.New("unauthorized access to income source")
)

// IncomeSourceErrorCode defines error codes for income source errors.
// Format: SRC-XXYYYY where XX is category and YYYY is specific error.
type IncomeSourceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeIncomeSourceNotFound     IncomeSourceErrorCode = "SRC-010001"
	ErrCodeIncomeSourceNameRequired IncomeSourceErrorCode = "SRC-010002"
	ErrCodeIncomeSourceNameTooLong  IncomeSourceErrorCode = "SRC-010003"
	ErrCodeUnauthorizedSourceAccess IncomeSourceErrorCode = "SRC-010004"
)

// IncomeSourceError represents an income source error with code and message.
type IncomeSourceError struct {
	Code    IncomeSourceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeSourceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeSourceError) Unwrap() error {
	return e.Err
}

// NewIncomeSourceError creates a new IncomeSourceError with the given code and message.
func NewIncomeSourceError(code IncomeSourceErrorCode, message string, err error) *IncomeSourceError {
	return &IncomeSourceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
