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

// CreateBudgetGoalInput represents the input for budget goal creation.
type CreateBudgetGoalInput struct {
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	Period        *entity.GoalPeriod // Optional, defaults to monthly
	StartDate     time.Time
	AlertOnExceed *bool // Optional, defaults to true
}

// CreateBudgetGoalOutput represents the output of budget goal creation.
type CreateBudgetGoalOutput struct {
	Goal *entity.BudgetGoal
}

// CreateBudgetGoalUseCase handles budget goal creation logic.
type CreateBudgetGoalUseCase struct {
	goalRepo     adapter.BudgetGoalRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetGoalUseCase creates a new CreateBudgetGoalUseCase instance.
func NewCreateBudgetGoalUseCase(
	goalRepo adapter.BudgetGoalRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateBudgetGoalUseCase {
	return &CreateBudgetGoalUseCase{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget goal creation.
func (uc *CreateBudgetGoalUseCase) Execute(ctx context.Context, input CreateBudgetGoalInput) (*CreateBudgetGoalOutput, error) {
	// Validate goal amount
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			"goal amount must be greater than zero",
			domainerror.ErrInvalidGoalAmount,
		)
	}

	// Validate category exists
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewBudgetGoalError(
			domainerror.ErrCodeGoalCategoryNotFound,
			"category not found",
			domainerror.ErrGoalCategoryNotFound,
		)
	}

	// Validate category belongs to user
	if category.UserID != input.UserID {
		return nil, domainerror.NewBudgetGoalError(
			domainerror.ErrCodeGoalCategoryNotOwned,
			"category does not belong to user",
			domainerror.ErrGoalCategoryNotOwned,
		)
	}

	// Apply defaults
	period := entity.GoalPeriodMonthly
	if input.Period != nil {
		if !isValidGoalPeriod(*input.Period) {
			return nil, domainerror.NewBudgetGoalError(
				domainerror.ErrCodeInvalidGoalPeriod,
				"period must be 'monthly', 'weekly', or 'yearly'",
				domainerror.ErrInvalidGoalPeriod,
			)
		}
		period = *input.Period
	}

	alertOnExceed := true
	if input.AlertOnExceed != nil {
		alertOnExceed = *input.AlertOnExceed
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now().UTC()
	}

	// Create goal entity
	goal := entity.NewBudgetGoal(
		input.UserID,
		input.CategoryID,
		input.Amount,
		period,
		startDate,
		alertOnExceed,
	)

	// Save goal to database
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create budget goal: %w", err)
	}

	return &CreateBudgetGoalOutput{
		Goal: goal,
	}, nil
}

// isValidGoalPeriod validates the goal period.
func isValidGoalPeriod(period entity.GoalPeriod) bool {
	return period == entity.GoalPeriodMonthly ||
		period == entity.GoalPeriodWeekly ||
		period == entity.GoalPeriodYearly
}
