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

// UpdateSavingsGoalInput represents the input for savings goal update.
// Nil fields keep their current value. ClearTargetDate removes the target
// date entirely.
type UpdateSavingsGoalInput struct {
	UserID          uuid.UUID
	GoalID          uuid.UUID
	Name            *string
	TargetAmount    *decimal.Decimal
	TargetDate      *time.Time
	ClearTargetDate bool
}

// UpdateSavingsGoalOutput represents the output of savings goal update.
type UpdateSavingsGoalOutput struct {
	Goal *entity.SavingsGoal
}

// UpdateSavingsGoalUseCase handles savings goal update logic.
type UpdateSavingsGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewUpdateSavingsGoalUseCase creates a new UpdateSavingsGoalUseCase instance.
func NewUpdateSavingsGoalUseCase(goalRepo adapter.SavingsGoalRepository) *UpdateSavingsGoalUseCase {
	return &UpdateSavingsGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal update.
func (uc *UpdateSavingsGoalUseCase) Execute(ctx context.Context, input UpdateSavingsGoalInput) (*UpdateSavingsGoalOutput, error) {
	goal, err := findOwnedSavingsGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewSavingsGoalError(
				domainerror.ErrCodeSavingsGoalNameRequired,
				"savings goal name is required",
				domainerror.ErrSavingsGoalNameRequired,
			)
		}
		goal.Name = *input.Name
	}
	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewSavingsGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}
	if input.ClearTargetDate {
		goal.TargetDate = nil
	} else if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	return &UpdateSavingsGoalOutput{
		Goal: goal,
	}, nil
}
