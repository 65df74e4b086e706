// Package incomesource contains income source-related use cases.
package incomesource

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// maxNameLength bounds the income source name column.
const maxNameLength = 100

// CreateIncomeSourceInput represents the input for income source creation.
type CreateIncomeSourceInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
}

// CreateIncomeSourceOutput represents the output of income source creation.
type CreateIncomeSourceOutput struct {
	Source *entity.IncomeSource
}

// CreateIncomeSourceUseCase handles income source creation logic.
type CreateIncomeSourceUseCase struct {
	sourceRepo adapter.IncomeSourceRepository
}

// NewCreateIncomeSourceUseCase creates a new CreateIncomeSourceUseCase instance.
func NewCreateIncomeSourceUseCase(sourceRepo adapter.IncomeSourceRepository) *CreateIncomeSourceUseCase {
	return &CreateIncomeSourceUseCase{
		sourceRepo: sourceRepo,
	}
}

// Execute performs the income source creation.
func (uc *CreateIncomeSourceUseCase) Execute(ctx context.Context, input CreateIncomeSourceInput) (*CreateIncomeSourceOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	source := entity.NewIncomeSource(input.UserID, input.Name, input.Description)

	if err := uc.sourceRepo.Create(ctx, source); err != nil {
		return nil, fmt.Errorf("failed to create income source: %w", err)
	}

	return &CreateIncomeSourceOutput{
		Source: source,
	}, nil
}

// validateName validates the income source name.
func validateName(name string) error {
	if name == "" {
		return domainerror.NewIncomeSourceError(
			domainerror.ErrCodeIncomeSourceNameRequired,
			"income source name is required",
			domainerror.ErrIncomeSourceNameRequired,
		)
	}
	if len(name) > maxNameLength {
		return domainerror.NewIncomeSourceError(
			domainerror.ErrCodeIncomeSourceNameTooLong,
			"income source name too long",
			domainerror.ErrIncomeSourceNameTooLong,
		)
	}
	return nil
}
