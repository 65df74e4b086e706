// Package incomesource contains income source-related use cases.
package incomesource

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// DeleteIncomeSourceInput represents the input for income source deletion.
type DeleteIncomeSourceInput struct {
	UserID   uuid.UUID
	SourceID uuid.UUID
}

// DeleteIncomeSourceOutput represents the output of income source deletion.
type DeleteIncomeSourceOutput struct {
	Message string
}

// DeleteIncomeSourceUseCase handles income source deletion logic.
type DeleteIncomeSourceUseCase struct {
	sourceRepo adapter.IncomeSourceRepository
}

// NewDeleteIncomeSourceUseCase creates a new DeleteIncomeSourceUseCase instance.
func NewDeleteIncomeSourceUseCase(sourceRepo adapter.IncomeSourceRepository) *DeleteIncomeSourceUseCase {
	return &DeleteIncomeSourceUseCase{
		sourceRepo: sourceRepo,
	}
}

// Execute soft-deletes the income source. Transactions that referenced it
// keep their history with the reference nulled; they appear under the
// Unassigned bucket in breakdowns from then on.
func (uc *DeleteIncomeSourceUseCase) Execute(ctx context.Context, input DeleteIncomeSourceInput) (*DeleteIncomeSourceOutput, error) {
	source, err := uc.sourceRepo.FindByID(ctx, input.SourceID)
	if err != nil {
		return nil, domainerror.NewIncomeSourceError(
			domainerror.ErrCodeIncomeSourceNotFound,
			"income source not found",
			domainerror.ErrIncomeSourceNotFound,
		)
	}
	if source.UserID != input.UserID {
		return nil, domainerror.NewIncomeSourceError(
			domainerror.ErrCodeUnauthorizedSourceAccess,
			"unauthorized access to income source",
			domainerror.ErrUnauthorizedSourceAccess,
		)
	}

	if err := uc.sourceRepo.Delete(ctx, input.SourceID); err != nil {
		return nil, fmt.Errorf("failed to delete income source: %w", err)
	}

	return &DeleteIncomeSourceOutput{
		Message: "Income source deleted successfully",
	}, nil
}
