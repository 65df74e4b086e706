// Package report contains reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/domain/ledger"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// comparisonMonths is the length of the month-by-month comparison series.
const comparisonMonths = 12

// GenerateReportInput represents the input for report generation.
// StartDate and EndDate are required for custom reports and ignored
// otherwise. A zero reference date means now.
type GenerateReportInput struct {
	UserID        uuid.UUID
	Type          valueobject.PeriodKind
	ReferenceDate time.Time
	StartDate     *time.Time
	EndDate       *time.Time
}

// MonthComparison represents one month of the comparison series.
type MonthComparison struct {
	Year     int
	Month    time.Month
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// GenerateReportOutput represents the output of report generation.
type GenerateReportOutput struct {
	Type               valueobject.PeriodKind
	Period             valueobject.Period
	Totals             entity.TransactionTotals
	IncomeBySource     []ledger.Bucket
	ExpensesByCategory []ledger.Bucket
	DailyExpenses      []ledger.DayTotal
	MonthlyComparison  []MonthComparison
}

// GenerateReportUseCase handles report generation logic.
type GenerateReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	sourceRepo      adapter.IncomeSourceRepository
	categoryRepo    adapter.CategoryRepository
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	transactionRepo adapter.TransactionRepository,
	sourceRepo adapter.IncomeSourceRepository,
	categoryRepo adapter.CategoryRepository,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		transactionRepo: transactionRepo,
		sourceRepo:      sourceRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute builds a report for the requested window plus a trailing
// month-by-month comparison ending at the reference month. Validation runs
// before any data is loaded.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	reference := input.ReferenceDate
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	period, err := uc.resolvePeriod(input, reference)
	if err != nil {
		return nil, err
	}

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

	comparison, err := uc.buildMonthlyComparison(ctx, input.UserID, reference)
	if err != nil {
		return nil, err
	}

	return &GenerateReportOutput{
		Type:               input.Type,
		Period:             period,
		Totals:             ledger.Totals(transactions, period),
		IncomeBySource:     ledger.BreakdownBySource(transactions, period, sources),
		ExpensesByCategory: ledger.BreakdownByCategory(transactions, period, categories),
		DailyExpenses:      ledger.DailySeries(transactions, period),
		MonthlyComparison:  comparison,
	}, nil
}

// resolvePeriod maps the report type onto a period window.
func (uc *GenerateReportUseCase) resolvePeriod(input GenerateReportInput, reference time.Time) (valueobject.Period, error) {
	switch input.Type {
	case valueobject.PeriodWeekly, valueobject.PeriodMonthly, valueobject.PeriodYearly:
		return valueobject.ResolvePeriod(input.Type, reference), nil

	case valueobject.PeriodCustom:
		var start, end time.Time
		if input.StartDate != nil {
			start = *input.StartDate
		}
		if input.EndDate != nil {
			end = *input.EndDate
		}
		return valueobject.NewCustomPeriod(start, end)

	default:
		return valueobject.Period{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			"report type must be: weekly, monthly, yearly, or custom",
			domainerror.ErrInvalidReportType,
		)
	}
}

// buildMonthlyComparison computes income/expense totals for the trailing
// twelve calendar months ending at the reference month. Months that start
// after the reference date report zero.
func (uc *GenerateReportUseCase) buildMonthlyComparison(ctx context.Context, userID uuid.UUID, reference time.Time) ([]MonthComparison, error) {
	lastMonth := valueobject.MonthPeriod(reference.Year(), reference.Month())
	firstMonth := valueobject.MonthPeriod(
		lastMonth.Start.AddDate(0, -(comparisonMonths-1), 0).Year(),
		lastMonth.Start.AddDate(0, -(comparisonMonths-1), 0).Month(),
	)

	transactions, err := uc.transactionRepo.FindByUserAndPeriod(ctx, userID, firstMonth.Start, lastMonth.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load comparison transactions: %w", err)
	}

	comparison := make([]MonthComparison, 0, comparisonMonths)
	for i := 0; i < comparisonMonths; i++ {
		monthStart := firstMonth.Start.AddDate(0, i, 0)
		month := valueobject.MonthPeriod(monthStart.Year(), monthStart.Month())

		entry := MonthComparison{
			Year:     monthStart.Year(),
			Month:    monthStart.Month(),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Balance:  decimal.Zero,
		}
		if !month.Start.After(reference) {
			totals := ledger.Totals(transactions, month)
			entry.Income = totals.IncomeTotal
			entry.Expenses = totals.ExpenseTotal
			entry.Balance = totals.Balance
		}
		comparison = append(comparison, entry)
	}

	return comparison, nil
}
