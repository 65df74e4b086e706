// Package category contains expense category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/domain/ledger"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// ListCategoriesInput represents the input for listing categories.
// The reference date selects the calendar month for the budget status.
type ListCategoriesInput struct {
	UserID        uuid.UUID
	ReferenceDate time.Time
}

// CategoryWithStatus pairs a category with its budget status for the month.
type CategoryWithStatus struct {
	Category     *entity.Category
	BudgetStatus entity.BudgetStatus
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryWithStatus
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's categories with each one's budget status for the
// calendar month containing the reference date.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	reference := input.ReferenceDate
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	period := valueobject.MonthPeriod(reference.Year(), reference.Month())
	transactions, err := uc.transactionRepo.FindByUserAndPeriod(ctx, input.UserID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	result := make([]*CategoryWithStatus, 0, len(categories))
	for _, category := range categories {
		result = append(result, &CategoryWithStatus{
			Category:     category,
			BudgetStatus: ledger.ComputeBudgetStatus(category, transactions, reference.Year(), reference.Month()),
		})
	}

	return &ListCategoriesOutput{
		Categories: result,
	}, nil
}
