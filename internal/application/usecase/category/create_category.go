// Package category contains expense category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// maxNameLength bounds the category name column.
const maxNameLength = 100

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID        uuid.UUID
	Name          string
	Description   string
	MonthlyBudget decimal.Decimal
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if err := validateCategoryFields(input.Name, input.MonthlyBudget); err != nil {
		return nil, err
	}

	category := entity.NewCategory(input.UserID, input.Name, input.Description, input.MonthlyBudget)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// validateCategoryFields validates the category name and monthly budget.
func validateCategoryFields(name string, monthlyBudget decimal.Decimal) error {
	if name == "" {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if len(name) > maxNameLength {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			"category name too long",
			domainerror.ErrCategoryNameTooLong,
		)
	}
	if monthlyBudget.IsNegative() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeNegativeMonthlyBudget,
			"monthly budget must not be negative",
			domainerror.ErrNegativeMonthlyBudget,
		)
	}
	return nil
}
