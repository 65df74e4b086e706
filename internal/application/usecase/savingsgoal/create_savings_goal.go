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

// CreateSavingsGoalInput represents the input for savings goal creation.
type CreateSavingsGoalInput struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   *time.Time
}

// CreateSavingsGoalOutput represents the output of savings goal creation.
type CreateSavingsGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateSavingsGoalUseCase handles savings goal creation logic.
type CreateSavingsGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewCreateSavingsGoalUseCase creates a new CreateSavingsGoalUseCase instance.
func NewCreateSavingsGoalUseCase(goalRepo adapter.SavingsGoalRepository) *CreateSavingsGoalUseCase {
	return &CreateSavingsGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal creation.
func (uc *CreateSavingsGoalUseCase) Execute(ctx context.Context, input CreateSavingsGoalInput) (*CreateSavingsGoalOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeSavingsGoalNameRequired,
			"savings goal name is required",
			domainerror.ErrSavingsGoalNameRequired,
		)
	}
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	goal := entity.NewSavingsGoal(input.UserID, input.Name, input.TargetAmount, input.TargetDate)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	return &CreateSavingsGoalOutput{
		Goal: goal,
	}, nil
}
