// Package savingsgoal contains savings goal-related use cases.
package savingsgoal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// ListSavingsGoalsInput represents the input for listing savings goals.
// The reference date anchors the days-remaining calculation.
type ListSavingsGoalsInput struct {
	UserID        uuid.UUID
	ReferenceDate time.Time
}

// SavingsGoalWithProgress pairs a savings goal with its derived progress.
type SavingsGoalWithProgress struct {
	Goal               *entity.SavingsGoal
	ProgressPercentage float64
	DaysRemaining      *int
}

// ListSavingsGoalsOutput represents the output of listing savings goals.
type ListSavingsGoalsOutput struct {
	Goals []*SavingsGoalWithProgress
}

// ListSavingsGoalsUseCase handles savings goal listing logic.
type ListSavingsGoalsUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewListSavingsGoalsUseCase creates a new ListSavingsGoalsUseCase instance.
func NewListSavingsGoalsUseCase(goalRepo adapter.SavingsGoalRepository) *ListSavingsGoalsUseCase {
	return &ListSavingsGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute lists the user's savings goals with progress and days remaining.
func (uc *ListSavingsGoalsUseCase) Execute(ctx context.Context, input ListSavingsGoalsInput) (*ListSavingsGoalsOutput, error) {
	reference := input.ReferenceDate
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}

	result := make([]*SavingsGoalWithProgress, 0, len(goals))
	for _, goal := range goals {
		result = append(result, &SavingsGoalWithProgress{
			Goal:               goal,
			ProgressPercentage: goal.ProgressPercentage(),
			DaysRemaining:      goal.DaysRemaining(reference),
		})
	}

	return &ListSavingsGoalsOutput{
		Goals: result,
	}, nil
}

// findOwnedSavingsGoal retrieves a savings goal and checks ownership.
func findOwnedSavingsGoal(ctx context.Context, repo adapter.SavingsGoalRepository, goalID, userID uuid.UUID) (*entity.SavingsGoal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeSavingsGoalNotFound,
			"savings goal not found",
			domainerror.ErrSavingsGoalNotFound,
		)
	}
	if goal.UserID != userID {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeUnauthorizedSavingsGoalAccess,
			"unauthorized access to savings goal",
			domainerror.ErrUnauthorizedSavingsGoalAccess,
		)
	}
	return goal, nil
}
