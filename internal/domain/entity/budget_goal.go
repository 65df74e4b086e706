// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalPeriod represents the recurring period type for a budget goal.
type GoalPeriod string

const (
	GoalPeriodWeekly  GoalPeriod = "weekly"
	GoalPeriodMonthly GoalPeriod = "monthly"
	GoalPeriodYearly  GoalPeriod = "yearly"
)

// BudgetGoal represents a recurring spending ceiling for one expense category.
// The window it applies to floats to "this week/month/year" at evaluation
// time; StartDate and EndDate are descriptive metadata and never bound the
// aggregation window.
type BudgetGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	Period        GoalPeriod
	StartDate     time.Time
	EndDate       *time.Time
	AlertOnExceed bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewBudgetGoal creates a new BudgetGoal entity.
func NewBudgetGoal(
	userID, categoryID uuid.UUID,
	amount decimal.Decimal,
	period GoalPeriod,
	startDate time.Time,
	alertOnExceed bool,
) *BudgetGoal {
	now := time.Now().UTC()

	return &BudgetGoal{
		ID:            uuid.New(),
		UserID:        userID,
		CategoryID:    categoryID,
		Amount:        amount,
		Period:        period,
		StartDate:     startDate,
		AlertOnExceed: alertOnExceed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
