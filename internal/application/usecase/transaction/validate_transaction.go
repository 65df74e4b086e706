// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// maxDescriptionLength bounds the free-text description column.
const maxDescriptionLength = 255

// validateCommonFields checks the fields shared by create and update.
func validateCommonFields(description string, amount decimal.Decimal) error {
	if description == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"description is required",
			nil,
		)
	}
	if len(description) > maxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			"description too long",
			domainerror.ErrDescriptionTooLong,
		)
	}
	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return nil
}

// validateSourceRef checks that the referenced income source exists and
// belongs to the user.
func validateSourceRef(ctx context.Context, repo adapter.IncomeSourceRepository, userID uuid.UUID, sourceID *uuid.UUID) error {
	if sourceID == nil {
		return nil
	}

	source, err := repo.FindByID(ctx, *sourceID)
	if err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnSourceNotFound,
			"income source not found",
			domainerror.ErrSourceNotFoundForTransaction,
		)
	}
	if source.UserID != userID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnSourceNotOwned,
			"income source does not belong to user",
			domainerror.ErrSourceNotOwnedByUser,
		)
	}
	return nil
}

// validateCategoryRef checks that the referenced category exists and belongs
// to the user.
func validateCategoryRef(ctx context.Context, repo adapter.CategoryRepository, userID uuid.UUID, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}

	category, err := repo.FindByID(ctx, *categoryID)
	if err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}
	if category.UserID != userID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotOwned,
			"category does not belong to user",
			domainerror.ErrCategoryNotOwnedByUser,
		)
	}
	return nil
}
