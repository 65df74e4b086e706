// Package incomesource contains income source-related use cases.
package incomesource

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListIncomeSourcesInput represents the input for listing income sources.
type ListIncomeSourcesInput struct {
	UserID uuid.UUID
}

// ListIncomeSourcesOutput represents the output of listing income sources.
type ListIncomeSourcesOutput struct {
	Sources []*entity.IncomeSource
}

// ListIncomeSourcesUseCase handles income source listing logic.
type ListIncomeSourcesUseCase struct {
	sourceRepo adapter.IncomeSourceRepository
}

// NewListIncomeSourcesUseCase creates a new ListIncomeSourcesUseCase instance.
func NewListIncomeSourcesUseCase(sourceRepo adapter.IncomeSourceRepository) *ListIncomeSourcesUseCase {
	return &ListIncomeSourcesUseCase{
		sourceRepo: sourceRepo,
	}
}

// Execute lists all income sources for the user.
func (uc *ListIncomeSourcesUseCase) Execute(ctx context.Context, input ListIncomeSourcesInput) (*ListIncomeSourcesOutput, error) {
	sources, err := uc.sourceRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income sources: %w", err)
	}

	return &ListIncomeSourcesOutput{
		Sources: sources,
	}, nil
}
