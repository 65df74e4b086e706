// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category represents an expense category in the Budgetwise system.
// MonthlyBudget is a soft ceiling used for per-month budget status; a zero
// budget means "no budget set" and always reports zero percent used.
type Category struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Description   string
	MonthlyBudget decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name, description string, monthlyBudget decimal.Decimal) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Description:   description,
		MonthlyBudget: monthlyBudget,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// BudgetStatus represents the spending position of a category for one calendar month.
type BudgetStatus struct {
	Spent      decimal.Decimal
	Budget     decimal.Decimal
	Remaining  decimal.Decimal
	Percentage float64
}
