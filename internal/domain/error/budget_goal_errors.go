// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Budget goal domain errors.
var (
	// ErrBudgetGoalNotFound is returned when a budget goal is not found in the system.
	ErrBudgetGoalNotFound = errors.New("budget goal not found")

	// ErrInvalidGoalAmount is returned when the goal amount is zero or negative.
	ErrInvalidGoalAmount = errors.New("goal amount must be greater than zero")

	// ErrGoalCategoryNotFound is returned when the category for a goal is not found.
	ErrGoalCategoryNotFound = errors.New("category not found")

	// ErrGoalCategoryNotOwned is returned when the category does not belong to the user.
	ErrGoalCategoryNotOwned = errors.New("category does not belong to user")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrInvalidGoalPeriod is returned when the goal period is invalid.
	ErrInvalidGoalPeriod = errors.New("invalid goal period")
)

// BudgetGoalErrorCode defines error codes for budget goal errors.
// Format: BGL-XXYYYY where XX is category and YYYY is specific error.
type BudgetGoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetGoalNotFound     BudgetGoalErrorCode = "BGL-010001"
	ErrCodeInvalidGoalAmount      BudgetGoalErrorCode = "BGL-010002"
	ErrCodeGoalCategoryNotFound   BudgetGoalErrorCode = "BGL-010003"
	ErrCodeGoalCategoryNotOwned   BudgetGoalErrorCode = "BGL-010004"
	ErrCodeUnauthorizedGoalAccess BudgetGoalErrorCode = "BGL-010005"
	ErrCodeInvalidGoalPeriod      BudgetGoalErrorCode = "BGL-010006"
	ErrCodeMissingGoalFields      BudgetGoalErrorCode = "BGL-010007"
)

// BudgetGoalError represents a budget goal error with code and message.
type BudgetGoalError struct {
	Code    BudgetGoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetGoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetGoalError) Unwrap() error {
	return e.Err
}

// NewBudgetGoalError creates a new BudgetGoalError with the given code and message.
func NewBudgetGoalError(code BudgetGoalErrorCode, message string, err error) *BudgetGoalError {
	return &BudgetGoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
