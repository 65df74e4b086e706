// Package budgetgoal contains budget goal-related use cases.
package budgetgoal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateBudgetGoalInput represents the input for budget goal update.
// Nil fields keep their current value.
type UpdateBudgetGoalInput struct {
	UserID        uuid.UUID
	GoalID        uuid.UUID
	Amount        *decimal.Decimal
	Period        *entity.GoalPeriod
	AlertOnExceed *bool
	EndDate       *time.Time
}

// UpdateBudgetGoalOutput represents the output of budget goal update.
type UpdateBudgetGoalOutput struct {
	Goal *entity.BudgetGoal
}

// UpdateBudgetGoalUseCase handles budget goal update logic.
type UpdateBudgetGoalUseCase struct {
	goalRepo adapter.BudgetGoalRepository
}

// NewUpdateBudgetGoalUseCase creates a new UpdateBudgetGoalUseCase instance.
func NewUpdateBudgetGoalUseCase(goalRepo adapter.BudgetGoalRepository) *UpdateBudgetGoalUseCase {
	return &UpdateBudgetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the budget goal update.
func (uc *UpdateBudgetGoalUseCase) Execute(ctx context.Context, input UpdateBudgetGoalInput) (*UpdateBudgetGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewBudgetGoalError(
				domainerror.ErrCodeInvalidGoalAmount,
				"goal amount must be greater than zero",
				domainerror.ErrInvalidGoalAmount,
			)
		}
		goal.Amount = *input.Amount
	}
	if input.Period != nil {
		if !isValidGoalPeriod(*input.Period) {
			return nil, domainerror.NewBudgetGoalError(
				domainerror.ErrCodeInvalidGoalPeriod,
				"period must be 'monthly', 'weekly', or 'yearly'",
				domainerror.ErrInvalidGoalPeriod,
			)
		}
		goal.Period = *input.Period
	}
	if input.AlertOnExceed != nil {
		goal.AlertOnExceed = *input.AlertOnExceed
	}
	if input.EndDate != nil {
		goal.EndDate = input.EndDate
	}
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update budget goal: %w", err)
	}

	return &UpdateBudgetGoalOutput{
		Goal: goal,
	}, nil
}
