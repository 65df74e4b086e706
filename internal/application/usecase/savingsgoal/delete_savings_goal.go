// Package savingsgoal contains savings goal-related use cases.
package savingsgoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// DeleteSavingsGoalInput represents the input for savings goal deletion.
type DeleteSavingsGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteSavingsGoalOutput represents the output of savings goal deletion.
type DeleteSavingsGoalOutput struct {
	Message string
}

// DeleteSavingsGoalUseCase handles savings goal deletion logic.
type DeleteSavingsGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewDeleteSavingsGoalUseCase creates a new DeleteSavingsGoalUseCase instance.
func NewDeleteSavingsGoalUseCase(goalRepo adapter.SavingsGoalRepository) *DeleteSavingsGoalUseCase {
	return &DeleteSavingsGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal deletion (soft delete).
func (uc *DeleteSavingsGoalUseCase) Execute(ctx context.Context, input DeleteSavingsGoalInput) (*DeleteSavingsGoalOutput, error) {
	if _, err := findOwnedSavingsGoal(ctx, uc.goalRepo, input.GoalID, input.UserID); err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return nil, fmt.Errorf("failed to delete savings goal: %w", err)
	}

	return &DeleteSavingsGoalOutput{
		Message: "Savings goal deleted successfully",
	}, nil
}
