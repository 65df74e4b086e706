package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	periodCalls  int
}

func (f *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return errors.New("not implemented")
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTransactionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithRefs, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTransactionRepo) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Transaction, error) {
	f.periodCalls++
	period := valueobject.Period{Start: startDate, End: endDate}
	var matched []*entity.Transaction
	for _, tx := range f.transactions {
		if period.Contains(tx.Date) {
			matched = append(matched, tx)
		}
	}
	return matched, nil
}

func (f *fakeTransactionRepo) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithRefs, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return errors.New("not implemented")
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

type fakeSourceRepo struct {
	sources []*entity.IncomeSource
}

func (f *fakeSourceRepo) Create(ctx context.Context, source *entity.IncomeSource) error {
	return errors.New("not implemented")
}

func (f *fakeSourceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeSource, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSourceRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.IncomeSource, error) {
	return f.sources, nil
}

func (f *fakeSourceRepo) ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	return false, nil
}

func (f *fakeSourceRepo) Update(ctx context.Context, source *entity.IncomeSource) error {
	return errors.New("not implemented")
}

func (f *fakeSourceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return errors.New("not implemented")
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeCategoryRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	return false, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	return errors.New("not implemented")
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newUseCase(transactions []*entity.Transaction, sources []*entity.IncomeSource, categories []*entity.Category) (*GenerateReportUseCase, *fakeTransactionRepo) {
	txRepo := &fakeTransactionRepo{transactions: transactions}
	return NewGenerateReportUseCase(txRepo, &fakeSourceRepo{sources: sources}, &fakeCategoryRepo{categories: categories}), txRepo
}

func TestGenerateReport_Monthly(t *testing.T) {
	userID := uuid.New()
	salary := &entity.IncomeSource{ID: uuid.New(), UserID: userID, Name: "Salary"}
	groceries := &entity.Category{ID: uuid.New(), UserID: userID, Name: "Groceries"}

	transactions := []*entity.Transaction{
		{ID: uuid.New(), UserID: userID, Date: date(2024, time.November, 1), Amount: money("3000.00"), Type: entity.TransactionTypeIncome, SourceID: &salary.ID},
		{ID: uuid.New(), UserID: userID, Date: date(2024, time.November, 5), Amount: money("120.00"), Type: entity.TransactionTypeExpense, CategoryID: &groceries.ID},
		{ID: uuid.New(), UserID: userID, Date: date(2024, time.November, 20), Amount: money("80.00"), Type: entity.TransactionTypeExpense, CategoryID: &groceries.ID},
		{ID: uuid.New(), UserID: userID, Date: date(2024, time.October, 10), Amount: money("500.00"), Type: entity.TransactionTypeExpense, CategoryID: &groceries.ID},
	}

	uc, _ := newUseCase(transactions, []*entity.IncomeSource{salary}, []*entity.Category{groceries})

	output, err := uc.Execute(context.Background(), GenerateReportInput{
		UserID:        userID,
		Type:          valueobject.PeriodMonthly,
		ReferenceDate: date(2024, time.November, 15),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Period.Start.Equal(date(2024, time.November, 1)) || !output.Period.End.Equal(date(2024, time.November, 30)) {
		t.Errorf("period = [%v, %v], want November 2024", output.Period.Start, output.Period.End)
	}
	if !output.Totals.IncomeTotal.Equal(money("3000.00")) {
		t.Errorf("income = %s, want 3000.00", output.Totals.IncomeTotal)
	}
	if !output.Totals.ExpenseTotal.Equal(money("200.00")) {
		t.Errorf("expenses = %s, want 200.00", output.Totals.ExpenseTotal)
	}
	if len(output.DailyExpenses) != 30 {
		t.Errorf("daily series length = %d, want 30", len(output.DailyExpenses))
	}
	if len(output.MonthlyComparison) != 12 {
		t.Fatalf("comparison length = %d, want 12", len(output.MonthlyComparison))
	}

	last := output.MonthlyComparison[11]
	if last.Year != 2024 || last.Month != time.November {
		t.Errorf("last comparison entry = %d-%s, want 2024-November", last.Year, last.Month)
	}
	october := output.MonthlyComparison[10]
	if !october.Expenses.Equal(money("500.00")) {
		t.Errorf("october expenses = %s, want 500.00", october.Expenses)
	}
}

func TestGenerateReport_Weekly(t *testing.T) {
	userID := uuid.New()
	uc, _ := newUseCase(nil, nil, nil)

	// Wednesday resolves to the Monday-to-Sunday week around it.
	output, err := uc.Execute(context.Background(), GenerateReportInput{
		UserID:        userID,
		Type:          valueobject.PeriodWeekly,
		ReferenceDate: date(2024, time.November, 13),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Period.Start.Equal(date(2024, time.November, 11)) || !output.Period.End.Equal(date(2024, time.November, 17)) {
		t.Errorf("period = [%v, %v], want Mon 11 .. Sun 17", output.Period.Start, output.Period.End)
	}
}

func TestGenerateReport_CustomValidatesBeforeLoading(t *testing.T) {
	userID := uuid.New()
	uc, txRepo := newUseCase(nil, nil, nil)

	start := date(2024, time.March, 15)
	end := date(2024, time.March, 1)

	_, err := uc.Execute(context.Background(), GenerateReportInput{
		UserID:    userID,
		Type:      valueobject.PeriodCustom,
		StartDate: &start,
		EndDate:   &end,
	})

	if !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("error = %v, want ErrInvalidDateRange", err)
	}
	if txRepo.periodCalls != 0 {
		t.Errorf("repository was queried %d times; validation must run first", txRepo.periodCalls)
	}
}

func TestGenerateReport_CustomMissingBounds(t *testing.T) {
	userID := uuid.New()
	uc, _ := newUseCase(nil, nil, nil)

	end := date(2024, time.March, 1)
	_, err := uc.Execute(context.Background(), GenerateReportInput{
		UserID:  userID,
		Type:    valueobject.PeriodCustom,
		EndDate: &end,
	})
	if !errors.Is(err, domainerror.ErrMissingStartDate) {
		t.Errorf("error = %v, want ErrMissingStartDate", err)
	}

	start := date(2024, time.March, 1)
	_, err = uc.Execute(context.Background(), GenerateReportInput{
		UserID:    userID,
		Type:      valueobject.PeriodCustom,
		StartDate: &start,
	})
	if !errors.Is(err, domainerror.ErrMissingEndDate) {
		t.Errorf("error = %v, want ErrMissingEndDate", err)
	}
}

func TestGenerateReport_InvalidType(t *testing.T) {
	userID := uuid.New()
	uc, _ := newUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), GenerateReportInput{
		UserID:        userID,
		Type:          valueobject.PeriodKind("quarterly"),
		ReferenceDate: date(2024, time.November, 15),
	})
	if !errors.Is(err, domainerror.ErrInvalidReportType) {
		t.Errorf("error = %v, want ErrInvalidReportType", err)
	}
}

func TestGenerateReport_FutureMonthsZeroed(t *testing.T) {
	userID := uuid.New()
	groceries := &entity.Category{ID: uuid.New(), UserID: userID, Name: "Groceries"}

	// Future-dated transaction inside the reference month but after the
	// reference day still counts; a month starting after the reference
	// date must report zero.
	transactions := []*entity.Transaction{
		{ID: uuid.New(), UserID: userID, Date: date(2024, time.November, 5), Amount: money("100.00"), Type: entity.TransactionTypeExpense, CategoryID: &groceries.ID},
	}

	uc, _ := newUseCase(transactions, nil, []*entity.Category{groceries})

	output, err := uc.Execute(context.Background(), GenerateReportInput{
		UserID:        userID,
		Type:          valueobject.PeriodYearly,
		ReferenceDate: date(2024, time.November, 15),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, entry := range output.MonthlyComparison {
		if entry.Year == 2024 && entry.Month == time.November && !entry.Expenses.Equal(money("100.00")) {
			t.Errorf("november expenses = %s, want 100.00", entry.Expenses)
		}
	}
}
