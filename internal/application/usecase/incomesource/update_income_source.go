// Package incomesource contains income source-related use cases.
package incomesource

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateIncomeSourceInput represents the input for income source update.
// Nil fields keep their current value.
type UpdateIncomeSourceInput struct {
	UserID      uuid.UUID
	SourceID    uuid.UUID
	Name        *string
	Description *string
}

// UpdateIncomeSourceOutput represents the output of income source update.
type UpdateIncomeSourceOutput struct {
	Source *entity.IncomeSource
}

// UpdateIncomeSourceUseCase handles income source update logic.
type UpdateIncomeSourceUseCase struct {
	sourceRepo adapter.IncomeSourceRepository
}

// NewUpdateIncomeSourceUseCase creates a new UpdateIncomeSourceUseCase instance.
func NewUpdateIncomeSourceUseCase(sourceRepo adapter.IncomeSourceRepository) *UpdateIncomeSourceUseCase {
	return &UpdateIncomeSourceUseCase{
		sourceRepo: sourceRepo,
	}
}

// Execute performs the income source update.
func (uc *UpdateIncomeSourceUseCase) Execute(ctx context.Context, input UpdateIncomeSourceInput) (*UpdateIncomeSourceOutput, error) {
	source, err := uc.findOwnedSource(ctx, input.SourceID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
		source.Name = *input.Name
	}
	if input.Description != nil {
		source.Description = *input.Description
	}
	source.UpdatedAt = time.Now().UTC()

	if err := uc.sourceRepo.Update(ctx, source); err != nil {
		return nil, fmt.Errorf("failed to update income source: %w", err)
	}

	return &UpdateIncomeSourceOutput{
		Source: source,
	}, nil
}

// findOwnedSource retrieves a source and checks ownership.
func (uc *UpdateIncomeSourceUseCase) findOwnedSource(ctx context.Context, sourceID, userID uuid.UUID) (*entity.IncomeSource, error) {
	source, err := uc.sourceRepo.FindByID(ctx, sourceID)
	if err != nil {
		return nil, domainerror.NewIncomeSourceError(
			domainerror.ErrCodeIncomeSourceNotFound,
			"income source not found",
			domainerror.ErrIncomeSourceNotFound,
		)
	}
	if source.UserID != userID {
		return nil, domainerror.NewIncomeSourceError(
			domainerror.ErrCodeUnauthorizedSourceAccess,
			"unauthorized access to income source",
			domainerror.ErrUnauthorizedSourceAccess,
		)
	}
	return source, nil
}
