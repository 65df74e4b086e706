package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(day time.Time, amount string, categoryID *uuid.UUID) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Date:       day,
		Amount:     money(amount),
		Type:       entity.TransactionTypeExpense,
		CategoryID: categoryID,
	}
}

func income(day time.Time, amount string, sourceID *uuid.UUID) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Date:     day,
		Amount:   money(amount),
		Type:     entity.TransactionTypeIncome,
		SourceID: sourceID,
	}
}

func TestTotals(t *testing.T) {
	period := valueobject.MonthPeriod(2024, time.November)
	sourceID := uuid.New()
	categoryID := uuid.New()

	transactions := []*entity.Transaction{
		income(date(2024, time.November, 1), "3000.00", &sourceID),
		income(date(2024, time.November, 15), "500.00", &sourceID),
		expense(date(2024, time.November, 5), "120.50", &categoryID),
		expense(date(2024, time.November, 20), "79.50", &categoryID),
		// outside the period, must be ignored
		expense(date(2024, time.October, 31), "999.00", &categoryID),
		income(date(2024, time.December, 1), "999.00", &sourceID),
	}

	totals := Totals(transactions, period)

	if !totals.IncomeTotal.Equal(money("3500.00")) {
		t.Errorf("income = %s, want 3500.00", totals.IncomeTotal)
	}
	if !totals.ExpenseTotal.Equal(money("200.00")) {
		t.Errorf("expenses = %s, want 200.00", totals.ExpenseTotal)
	}
	if !totals.Balance.Equal(money("3300.00")) {
		t.Errorf("balance = %s, want 3300.00", totals.Balance)
	}
}

func TestTotals_EmptySetIsZero(t *testing.T) {
	period := valueobject.MonthPeriod(2024, time.November)

	totals := Totals(nil, period)

	if !totals.IncomeTotal.IsZero() || !totals.ExpenseTotal.IsZero() || !totals.Balance.IsZero() {
		t.Errorf("empty set should produce zero totals, got %+v", totals)
	}
}

func TestTotalForCategory(t *testing.T) {
	period := valueobject.MonthPeriod(2024, time.November)
	groceries := uuid.New()
	transport := uuid.New()

	transactions := []*entity.Transaction{
		expense(date(2024, time.November, 3), "120.00", &groceries),
		expense(date(2024, time.November, 18), "80.00", &groceries),
		expense(date(2024, time.November, 10), "45.00", &transport),
		expense(date(2024, time.October, 20), "60.00", &groceries),
		expense(date(2024, time.November, 12), "30.00", nil),
	}

	got := TotalForCategory(transactions, groceries, period)
	if !got.Equal(money("200.00")) {
		t.Errorf("total = %s, want 200.00", got)
	}
}

func TestBreakdownByCategory(t *testing.T) {
	period := valueobject.MonthPeriod(2024, time.November)

	groceries := &entity.Category{ID: uuid.New(), Name: "Groceries"}
	transport := &entity.Category{ID: uuid.New(), Name: "Transport"}
	categories := []*entity.Category{groceries, transport}

	transactions := []*entity.Transaction{
		expense(date(2024, time.November, 2), "50.00", &transport.ID),
		expense(date(2024, time.November, 5), "120.00", &groceries.ID),
		expense(date(2024, time.November, 18), "80.00", &groceries.ID),
		expense(date(2024, time.November, 9), "35.00", nil),
	}

	buckets := BreakdownByCategory(transactions, period, categories)

	if len(buckets) != 3 {
		t.Fatalf("buckets = %d, want 3", len(buckets))
	}
	if buckets[0].Name != "Groceries" || !buckets[0].Total.Equal(money("200.00")) {
		t.Errorf("first bucket = %s/%s, want Groceries/200.00", buckets[0].Name, buckets[0].Total)
	}
	if buckets[0].TransactionCount != 2 {
		t.Errorf("groceries count = %d, want 2", buckets[0].TransactionCount)
	}
	if buckets[1].Name != "Transport" {
		t.Errorf("second bucket = %s, want Transport", buckets[1].Name)
	}
	if buckets[2].Name != UnassignedName || buckets[2].ID != nil {
		t.Errorf("third bucket should be the Unassigned bucket, got %s", buckets[2].Name)
	}
}

func TestBreakdownByCategory_SumMatchesExpenseTotal(t *testing.T) {
	period := valueobject.MonthPeriod(2024, time.November)

	groceries := &entity.Category{ID: uuid.New(), Name: "Groceries"}
	rent := &entity.Category{ID: uuid.New(), Name: "Rent"}
	categories := []*entity.Category{groceries, rent}

	transactions := []*entity.Transaction{
		expense(date(2024, time.November, 1), "1200.00", &rent.ID),
		expense(date(2024, time.November, 4), "87.35", &groceries.ID),
		expense(date(2024, time.November, 22), "14.90", nil),
		expense(date(2024, time.November, 29), "63.75", &groceries.ID),
	}

	buckets := BreakdownByCategory(transactions, period, categories)

	sum := decimal.Zero
	for _, b := range buckets {
		sum = sum.Add(b.Total)
	}

	want := TotalByType(transactions, entity.TransactionTypeExpense, period)
	if !sum.Equal(want) {
		t.Errorf("bucket sum = %s, expense total = %s; grouping must preserve the total", sum, want)
	}
}

func TestBreakdownByCategory_StableTies(t *testing.T) {
	period := valueobject.MonthPeriod(2024, time.November)

	first := &entity.Category{ID: uuid.New(), Name: "First Seen"}
	second := &entity.Category{ID: uuid.New(), Name: "Second Seen"}
	categories := []*entity.Category{first, second}

	transactions := []*entity.Transaction{
		expense(date(2024, time.November, 1), "50.00", &first.ID),
		expense(date(2024, time.November, 2), "50.00", &second.ID),
	}

	buckets := BreakdownByCategory(transactions, period, categories)

	if buckets[0].Name != "First Seen" || buckets[1].Name != "Second Seen" {
		t.Errorf("equal totals must keep first-seen order, got [%s, %s]", buckets[0].Name, buckets[1].Name)
	}
}

func TestBreakdownBySource(t *testing.T) {
	period := valueobject.MonthPeriod(2024, time.November)

	salary := &entity.IncomeSource{ID: uuid.New(), Name: "Salary"}
	freelance := &entity.IncomeSource{ID: uuid.New(), Name: "Freelance"}
	sources := []*entity.IncomeSource{salary, freelance}

	transactions := []*entity.Transaction{
		income(date(2024, time.November, 1), "3000.00", &salary.ID),
		income(date(2024, time.November, 14), "400.00", &freelance.ID),
		income(date(2024, time.November, 28), "150.00", &freelance.ID),
		// an expense must never leak into an income breakdown
		expense(date(2024, time.November, 10), "75.00", nil),
	}

	buckets := BreakdownBySource(transactions, period, sources)

	if len(buckets) != 2 {
		t.Fatalf("buckets = %d, want 2", len(buckets))
	}
	if buckets[0].Name != "Salary" || !buckets[0].Total.Equal(money("3000.00")) {
		t.Errorf("first bucket = %s/%s, want Salary/3000.00", buckets[0].Name, buckets[0].Total)
	}
	if buckets[1].Name != "Freelance" || !buckets[1].Total.Equal(money("550.00")) {
		t.Errorf("second bucket = %s/%s, want Freelance/550.00", buckets[1].Name, buckets[1].Total)
	}
}

func TestDailySeries(t *testing.T) {
	period := valueobject.MonthPeriod(2024, time.November)
	categoryID := uuid.New()
	sourceID := uuid.New()

	transactions := []*entity.Transaction{
		expense(date(2024, time.November, 1), "10.00", &categoryID),
		expense(date(2024, time.November, 1), "5.00", &categoryID),
		expense(date(2024, time.November, 30), "20.00", &categoryID),
		income(date(2024, time.November, 15), "3000.00", &sourceID),
	}

	series := DailySeries(transactions, period)

	if len(series) != 30 {
		t.Fatalf("series length = %d, want 30", len(series))
	}
	if !series[0].Total.Equal(money("15.00")) {
		t.Errorf("day 1 total = %s, want 15.00", series[0].Total)
	}
	if !series[29].Total.Equal(money("20.00")) {
		t.Errorf("day 30 total = %s, want 20.00", series[29].Total)
	}
	// income never contributes to the daily expense series
	if !series[14].Total.IsZero() {
		t.Errorf("day 15 total = %s, want 0", series[14].Total)
	}
	for i, day := range series {
		want := date(2024, time.November, 1+i)
		if !day.Date.Equal(want) {
			t.Fatalf("series[%d].Date = %v, want %v", i, day.Date, want)
		}
	}
}

func TestValidateClassification(t *testing.T) {
	sourceID := uuid.New()
	categoryID := uuid.New()

	tests := []struct {
		name    string
		tx      *entity.Transaction
		wantErr error
	}{
		{
			name:    "valid income",
			tx:      income(date(2024, time.November, 1), "100.00", &sourceID),
			wantErr: nil,
		},
		{
			name:    "valid expense",
			tx:      expense(date(2024, time.November, 1), "100.00", &categoryID),
			wantErr: nil,
		},
		{
			name: "income with category",
			tx: &entity.Transaction{
				Type:       entity.TransactionTypeIncome,
				SourceID:   &sourceID,
				CategoryID: &categoryID,
			},
			wantErr: domainerror.ErrIncomeWithCategory,
		},
		{
			name:    "income without source",
			tx:      income(date(2024, time.November, 1), "100.00", nil),
			wantErr: domainerror.ErrIncomeWithoutSource,
		},
		{
			name: "expense with source",
			tx: &entity.Transaction{
				Type:       entity.TransactionTypeExpense,
				SourceID:   &sourceID,
				CategoryID: &categoryID,
			},
			wantErr: domainerror.ErrExpenseWithSource,
		},
		{
			name:    "expense without category",
			tx:      expense(date(2024, time.November, 1), "100.00", nil),
			wantErr: domainerror.ErrExpenseWithoutCategory,
		},
		{
			name:    "unknown type",
			tx:      &entity.Transaction{Type: entity.TransactionType("transfer")},
			wantErr: domainerror.ErrInvalidTransactionType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClassification(tt.tx)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateForAggregation(t *testing.T) {
	sourceID := uuid.New()
	categoryID := uuid.New()

	t.Run("nil references are tolerated", func(t *testing.T) {
		transactions := []*entity.Transaction{
			income(date(2024, time.November, 1), "100.00", nil),
			expense(date(2024, time.November, 2), "50.00", nil),
		}
		if err := ValidateForAggregation(transactions); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("cross-typed references are rejected", func(t *testing.T) {
		transactions := []*entity.Transaction{
			{Type: entity.TransactionTypeIncome, CategoryID: &categoryID},
		}
		err := ValidateForAggregation(transactions)
		if !errors.Is(err, domainerror.ErrIncomeWithCategory) {
			t.Errorf("error = %v, want ErrIncomeWithCategory", err)
		}

		transactions = []*entity.Transaction{
			{Type: entity.TransactionTypeExpense, SourceID: &sourceID},
		}
		err = ValidateForAggregation(transactions)
		if !errors.Is(err, domainerror.ErrExpenseWithSource) {
			t.Errorf("error = %v, want ErrExpenseWithSource", err)
		}
	})
}
