// Package budgetgoal contains budget goal-related use cases.
package budgetgoal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/domain/ledger"
)

// GetBudgetGoalProgressInput represents the input for reading one goal's progress.
// The evaluation date selects the floating window; a zero value means now.
type GetBudgetGoalProgressInput struct {
	UserID         uuid.UUID
	GoalID         uuid.UUID
	EvaluationDate time.Time
}

// GetBudgetGoalProgressOutput represents the output of reading one goal's progress.
type GetBudgetGoalProgressOutput struct {
	Goal     *entity.BudgetGoal
	Progress ledger.GoalProgress
}

// GetBudgetGoalProgressUseCase handles budget goal progress evaluation.
type GetBudgetGoalProgressUseCase struct {
	goalRepo        adapter.BudgetGoalRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBudgetGoalProgressUseCase creates a new GetBudgetGoalProgressUseCase instance.
func NewGetBudgetGoalProgressUseCase(
	goalRepo adapter.BudgetGoalRepository,
	transactionRepo adapter.TransactionRepository,
) *GetBudgetGoalProgressUseCase {
	return &GetBudgetGoalProgressUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute evaluates the goal against the period window containing the
// evaluation date.
func (uc *GetBudgetGoalProgressUseCase) Execute(ctx context.Context, input GetBudgetGoalProgressInput) (*GetBudgetGoalProgressOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	evaluationDate := input.EvaluationDate
	if evaluationDate.IsZero() {
		evaluationDate = time.Now().UTC()
	}

	// Resolve the window first so only one period of transactions is loaded
	progress := ledger.ComputeGoalProgress(goal, nil, evaluationDate)
	transactions, err := uc.transactionRepo.FindByUserAndPeriod(ctx, input.UserID, progress.Period.Start, progress.Period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &GetBudgetGoalProgressOutput{
		Goal:     goal,
		Progress: ledger.ComputeGoalProgress(goal, transactions, evaluationDate),
	}, nil
}

// findOwnedGoal retrieves a goal and checks ownership.
func findOwnedGoal(ctx context.Context, repo adapter.BudgetGoalRepository, goalID, userID uuid.UUID) (*entity.BudgetGoal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		return nil, domainerror.NewBudgetGoalError(
			domainerror.ErrCodeBudgetGoalNotFound,
			"budget goal not found",
			domainerror.ErrBudgetGoalNotFound,
		)
	}
	if goal.UserID != userID {
		return nil, domainerror.NewBudgetGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"unauthorized access to goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}
	return goal, nil
}
