// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Savings goal domain errors.
var (
	// ErrSavingsGoalNotFound is returned when a savings goal is not found in the system.
	ErrSavingsGoalNotFound = errors.New("savings goal not found")

	// ErrSavingsGoalNameRequired is returned when the savings goal name is empty.
	ErrSavingsGoalNameRequired = errors.New("savings goal name is required")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrNegativeCurrentAmount is returned when a contribution would make the saved amount negative.
	ErrNegativeCurrentAmount = errors.New("current amount must not be negative")

	// ErrUnauthorizedSavingsGoalAccess is returned when user is not authorized to access a savings goal.
	ErrUnauthorizedSavingsGoalAccess = errors.New("unauthorized access to savings goal")
)

// SavingsGoalErrorCode defines error codes for savings goal errors.
// Format: SGL-XXYYYY where XX is category and YYYY is specific error.
type SavingsGoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSavingsGoalNotFound           SavingsGoalErrorCode = "SGL-010001"
	ErrCodeSavingsGoalNameRequired       SavingsGoalErrorCode = "SGL-010002"
	ErrCodeInvalidTargetAmount           SavingsGoalErrorCode = "SGL-010003"
	ErrCodeNegativeCurrentAmount         SavingsGoalErrorCode = "SGL-010004"
	ErrCodeUnauthorizedSavingsGoalAccess SavingsGoalErrorCode = "SGL-010005"
	ErrCodeMissingSavingsGoalFields      SavingsGoalErrorCode = "SGL-010006"
)

// SavingsGoalError represents a savings goal error with code and message.
type SavingsGoalError struct {
	Code    SavingsGoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingsGoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingsGoalError) Unwrap() error {
	return e.Err
}

// NewSavingsGoalError creates a new SavingsGoalError with the given code and message.
func NewSavingsGoalError(code SavingsGoalErrorCode, message string, err error) *SavingsGoalError {
	return &SavingsGoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
