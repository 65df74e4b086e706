// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	SourceID    *string `json:"source_id,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	ReceiptPath string  `json:"receipt_path,omitempty" binding:"omitempty,max=500"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// SourceID and CategoryID are always applied as a pair when either is present.
type UpdateTransactionRequest struct {
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *float64 `json:"amount,omitempty"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	SourceID    *string  `json:"source_id,omitempty"`
	CategoryID  *string  `json:"category_id,omitempty"`
	UpdateRefs  bool     `json:"update_refs,omitempty"`
	ReceiptPath *string  `json:"receipt_path,omitempty" binding:"omitempty,max=500"`
}

// TransactionSourceResponse represents income source information in transaction responses.
type TransactionSourceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TransactionCategoryResponse represents category information in transaction responses.
type TransactionCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	Date        string                       `json:"date"`
	Description string                       `json:"description"`
	Amount      string                       `json:"amount"`
	Type        string                       `json:"type"`
	SourceID    *string                      `json:"source_id,omitempty"`
	Source      *TransactionSourceResponse   `json:"source,omitempty"`
	CategoryID  *string                      `json:"category_id,omitempty"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	ReceiptPath string                       `json:"receipt_path,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	Balance      string `json:"balance"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// ToTransactionResponse converts a Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		Date:        txn.Date.Format("2006-01-02"),
		Description: txn.Description,
		Amount:      txn.Amount.String(),
		Type:        string(txn.Type),
		ReceiptPath: txn.ReceiptPath,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if txn.SourceID != nil {
		sourceIDStr := txn.SourceID.String()
		response.SourceID = &sourceIDStr
	}
	if txn.CategoryID != nil {
		categoryIDStr := txn.CategoryID.String()
		response.CategoryID = &categoryIDStr
	}

	return response
}

// ToTransactionWithRefsResponse converts a TransactionWithRefs to a TransactionResponse DTO.
func ToTransactionWithRefsResponse(txn *entity.TransactionWithRefs) TransactionResponse {
	response := ToTransactionResponse(txn.Transaction)

	if txn.Source != nil {
		response.Source = &TransactionSourceResponse{
			ID:   txn.Source.ID.String(),
			Name: txn.Source.Name,
		}
	}
	if txn.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:   txn.Category.ID.String(),
			Name: txn.Category.Name,
		}
	}

	return response
}

// ToTransactionTotalsResponse converts TransactionTotals to a TransactionTotalsResponse DTO.
func ToTransactionTotalsResponse(totals entity.TransactionTotals) TransactionTotalsResponse {
	return TransactionTotalsResponse{
		IncomeTotal:  totals.IncomeTotal.String(),
		ExpenseTotal: totals.ExpenseTotal.String(),
		Balance:      totals.Balance.String(),
	}
}

// ToTransactionListResponse converts transactions with totals to a TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.TransactionWithRefs, totals entity.TransactionTotals) TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		items[i] = ToTransactionWithRefsResponse(txn)
	}

	return TransactionListResponse{
		Transactions: items,
		Totals:       ToTransactionTotalsResponse(totals),
	}
}
