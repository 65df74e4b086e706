// Package budgetgoal contains budget goal-related use cases.
package budgetgoal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/domain/ledger"
)

// ListBudgetGoalsInput represents the input for listing budget goals.
type ListBudgetGoalsInput struct {
	UserID         uuid.UUID
	EvaluationDate time.Time
}

// GoalWithProgress pairs a budget goal with its current window progress.
type GoalWithProgress struct {
	Goal         *entity.BudgetGoal
	CategoryName string
	Progress     ledger.GoalProgress
}

// ListBudgetGoalsOutput represents the output of listing budget goals.
type ListBudgetGoalsOutput struct {
	Goals []*GoalWithProgress
}

// ListBudgetGoalsUseCase handles budget goal listing logic.
type ListBudgetGoalsUseCase struct {
	goalRepo        adapter.BudgetGoalRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBudgetGoalsUseCase creates a new ListBudgetGoalsUseCase instance.
func NewListBudgetGoalsUseCase(
	goalRepo adapter.BudgetGoalRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *ListBudgetGoalsUseCase {
	return &ListBudgetGoalsUseCase{
		goalRepo:        goalRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's budget goals, each evaluated against the period
// window containing the evaluation date.
func (uc *ListBudgetGoalsUseCase) Execute(ctx context.Context, input ListBudgetGoalsInput) (*ListBudgetGoalsOutput, error) {
	evaluationDate := input.EvaluationDate
	if evaluationDate.IsZero() {
		evaluationDate = time.Now().UTC()
	}

	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget goals: %w", err)
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	result := make([]*GoalWithProgress, 0, len(goals))
	for _, goal := range goals {
		progress := ledger.ComputeGoalProgress(goal, nil, evaluationDate)
		transactions, err := uc.transactionRepo.FindByUserAndPeriod(ctx, input.UserID, progress.Period.Start, progress.Period.End)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}

		result = append(result, &GoalWithProgress{
			Goal:         goal,
			CategoryName: categoryNames[goal.CategoryID],
			Progress:     ledger.ComputeGoalProgress(goal, transactions, evaluationDate),
		})
	}

	return &ListBudgetGoalsOutput{
		Goals: result,
	}, nil
}
