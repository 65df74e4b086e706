// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/domain/ledger"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// recentTransactionLimit caps the recent activity list on the dashboard.
const recentTransactionLimit = 5

// GetOverviewInput represents the input for the dashboard overview.
// Year and Month select the calendar month; zero values mean the current month.
type GetOverviewInput struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
}

// CategoryBudgetStatus pairs a category name with its month budget status.
type CategoryBudgetStatus struct {
	CategoryID   uuid.UUID
	CategoryName string
	Status       entity.BudgetStatus
}

// GetOverviewOutput represents the output of the dashboard overview.
type GetOverviewOutput struct {
	Period             valueobject.Period
	Totals             entity.TransactionTotals
	IncomeBySource     []ledger.Bucket
	ExpensesByCategory []ledger.Bucket
	DailyExpenses      []ledger.DayTotal
	BudgetStatuses     []CategoryBudgetStatus
	RecentTransactions []*entity.TransactionWithRefs
}

// GetOverviewUseCase handles dashboard overview logic.
type GetOverviewUseCase struct {
	transactionRepo adapter.TransactionRepository
	sourceRepo      adapter.IncomeSourceRepository
	categoryRepo    adapter.CategoryRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	transactionRepo adapter.TransactionRepository,
	sourceRepo adapter.IncomeSourceRepository,
	categoryRepo adapter.CategoryRepository,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		transactionRepo: transactionRepo,
		sourceRepo:      sourceRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute assembles the monthly overview: totals, breakdowns, the daily
// expense series, per-category budget statuses and recent activity.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	year, month := input.Year, input.Month
	if year == 0 || month == 0 {
		now := time.Now().UTC()
		year, month = now.Year(), now.Month()
	}
	if month < time.January || month > time.December {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	period := valueobject.MonthPeriod(year, month)

	transactions, err := uc.transactionRepo.FindByUserAndPeriod(ctx, input.UserID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if err := ledger.ValidateForAggregation(transactions); err != nil {
		return nil, err
	}

	sources, err := uc.sourceRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load income sources: %w", err)
	}
	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	budgetStatuses := make([]CategoryBudgetStatus, 0, len(categories))
	for _, category := range categories {
		budgetStatuses = append(budgetStatuses, CategoryBudgetStatus{
			CategoryID:   category.ID,
			CategoryName: category.Name,
			Status:       ledger.ComputeBudgetStatus(category, transactions, year, month),
		})
	}

	recent, err := uc.transactionRepo.FindRecentByUser(ctx, input.UserID, recentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	return &GetOverviewOutput{
		Period:             period,
		Totals:             ledger.Totals(transactions, period),
		IncomeBySource:     ledger.BreakdownBySource(transactions, period, sources),
		ExpensesByCategory: ledger.BreakdownByCategory(transactions, period, categories),
		DailyExpenses:      ledger.DailySeries(transactions, period),
		BudgetStatuses:     budgetStatuses,
		RecentTransactions: recent,
	}, nil
}
