// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single recorded money movement in the Budgetwise system.
// Amounts are always non-negative; the Type field determines the direction.
// An income transaction references an IncomeSource, an expense transaction
// references a Category. The references are nullable because deleting a
// source or category keeps its transactions and nulls the reference.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	SourceID    *uuid.UUID // Set iff Type is income
	CategoryID  *uuid.UUID // Set iff Type is expense
	ReceiptPath string     // Path to an uploaded receipt; file storage is external
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	sourceID *uuid.UUID,
	categoryID *uuid.UUID,
	receiptPath string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		SourceID:    sourceID,
		CategoryID:  categoryID,
		ReceiptPath: receiptPath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithRefs represents a transaction with its resolved source or category.
type TransactionWithRefs struct {
	Transaction *Transaction
	Source      *IncomeSource
	Category    *Category
}

// TransactionTotals represents aggregated totals for a set of transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal
}
