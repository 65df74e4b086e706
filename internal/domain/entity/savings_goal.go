// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a savings target in the Budgetwise system.
// CurrentAmount is updated through explicit contributions; it has no
// linkage to transaction history.
type SavingsGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewSavingsGoal creates a new SavingsGoal entity.
func NewSavingsGoal(userID uuid.UUID, name string, targetAmount decimal.Decimal, targetDate *time.Time) *SavingsGoal {
	now := time.Now().UTC()

	return &SavingsGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    targetDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ProgressPercentage returns how far the goal is towards its target, as a
// percentage. A non-positive target always reports zero.
func (g *SavingsGoal) ProgressPercentage() float64 {
	if g.TargetAmount.IsPositive() {
		pct := g.CurrentAmount.Mul(decimal.NewFromInt(100)).Div(g.TargetAmount)
		result, _ := pct.Round(2).Float64()
		return result
	}
	return 0
}

// DaysRemaining returns the number of whole days until the target date,
// measured from the given reference date. It returns nil when the goal has
// no target date and 0 once the target date has passed.
func (g *SavingsGoal) DaysRemaining(today time.Time) *int {
	if g.TargetDate == nil {
		return nil
	}

	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	targetDate := time.Date(g.TargetDate.Year(), g.TargetDate.Month(), g.TargetDate.Day(), 0, 0, 0, 0, time.UTC)

	days := int(targetDate.Sub(todayDate).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}
