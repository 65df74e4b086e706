// Package budgetgoal contains budget goal-related use cases.
package budgetgoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// DeleteBudgetGoalInput represents the input for budget goal deletion.
type DeleteBudgetGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteBudgetGoalOutput represents the output of budget goal deletion.
type DeleteBudgetGoalOutput struct {
	Message string
}

// DeleteBudgetGoalUseCase handles budget goal deletion logic.
type DeleteBudgetGoalUseCase struct {
	goalRepo adapter.BudgetGoalRepository
}

// NewDeleteBudgetGoalUseCase creates a new DeleteBudgetGoalUseCase instance.
func NewDeleteBudgetGoalUseCase(goalRepo adapter.BudgetGoalRepository) *DeleteBudgetGoalUseCase {
	return &DeleteBudgetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the budget goal deletion (soft delete).
func (uc *DeleteBudgetGoalUseCase) Execute(ctx context.Context, input DeleteBudgetGoalInput) (*DeleteBudgetGoalOutput, error) {
	if _, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID); err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return nil, fmt.Errorf("failed to delete budget goal: %w", err)
	}

	return &DeleteBudgetGoalOutput{
		Message: "Budget goal deleted successfully",
	}, nil
}
