// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the transaction amount is negative.
	ErrInvalidTransactionAmount = errors.New("transaction amount must not be negative")

	// Classification errors: a transaction must carry exactly one of
	// income source / expense category, matching its type.

	// ErrIncomeWithCategory is returned when an income transaction carries an expense category.
	ErrIncomeWithCategory = errors.New("income transactions cannot have an expense category")

	// ErrExpenseWithSource is returned when an expense transaction carries an income source.
	ErrExpenseWithSource = errors.New("expense transactions cannot have an income source")

	// ErrIncomeWithoutSource is returned when an income transaction has no income source.
	ErrIncomeWithoutSource = errors.New("income transactions must have an income source")

	// ErrExpenseWithoutCategory is returned when an expense transaction has no expense category.
	ErrExpenseWithoutCategory = errors.New("expense transactions must have an expense category")

	// ErrSourceNotFoundForTransaction is returned when the specified income source is not found.
	ErrSourceNotFoundForTransaction = errors.New("income source not found")

	// ErrCategoryNotFoundForTransaction is returned when the specified category is not found.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrSourceNotOwnedByUser is returned when the income source does not belong to the user.
	ErrSourceNotOwnedByUser = errors.New("income source does not belong to user")

	// ErrCategoryNotOwnedByUser is returned when the category does not belong to the user.
	ErrCategoryNotOwnedByUser = errors.New("category does not belong to user")

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010003"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-010004"
	ErrCodeTxnSourceNotFound        TransactionErrorCode = "TXN-010005"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010006"
	ErrCodeTxnSourceNotOwned        TransactionErrorCode = "TXN-010007"
	ErrCodeTxnCategoryNotOwned      TransactionErrorCode = "TXN-010008"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010009"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010010"

	// Classification errors (02XXXX)
	ErrCodeIncomeWithCategory     TransactionErrorCode = "TXN-020001"
	ErrCodeExpenseWithSource      TransactionErrorCode = "TXN-020002"
	ErrCodeIncomeWithoutSource    TransactionErrorCode = "TXN-020003"
	ErrCodeExpenseWithoutCategory TransactionErrorCode = "TXN-020004"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
