// Package savingsgoal contains savings goal-related use cases.
package savingsgoal

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

// ContributeSavingsGoalInput represents the input for a savings contribution.
// A negative amount withdraws from the goal; the saved amount never drops
// below zero.
type ContributeSavingsGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
}

// ContributeSavingsGoalOutput represents the output of a savings contribution.
type ContributeSavingsGoalOutput struct {
	Goal               *entity.SavingsGoal
	ProgressPercentage float64
}

// ContributeSavingsGoalUseCase handles savings contribution logic.
type ContributeSavingsGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewContributeSavingsGoalUseCase creates a new ContributeSavingsGoalUseCase instance.
func NewContributeSavingsGoalUseCase(goalRepo adapter.SavingsGoalRepository) *ContributeSavingsGoalUseCase {
	return &ContributeSavingsGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute applies the contribution to the goal's saved amount.
func (uc *ContributeSavingsGoalUseCase) Execute(ctx context.Context, input ContributeSavingsGoalInput) (*ContributeSavingsGoalOutput, error) {
	goal, err := findOwnedSavingsGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	newAmount := goal.CurrentAmount.Add(input.Amount)
	if newAmount.IsNegative() {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeNegativeCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrNegativeCurrentAmount,
		)
	}

	goal.CurrentAmount = newAmount
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	return &ContributeSavingsGoalOutput{
		Goal:               goal,
		ProgressPercentage: goal.ProgressPercentage(),
	}, nil
}
