package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

func TestComputeGoalProgress_Monthly(t *testing.T) {
	categoryID := uuid.New()
	goal := &entity.BudgetGoal{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		CategoryID: categoryID,
		Amount:     money("500.00"),
		Period:     entity.GoalPeriodMonthly,
	}

	transactions := []*entity.Transaction{
		expense(date(2024, time.November, 5), "120.00", &categoryID),
		expense(date(2024, time.November, 20), "80.00", &categoryID),
		// previous month, outside the floating window
		expense(date(2024, time.October, 15), "400.00", &categoryID),
	}

	progress := ComputeGoalProgress(goal, transactions, date(2024, time.November, 25))

	if !progress.Spent.Equal(money("200.00")) {
		t.Errorf("spent = %s, want 200.00", progress.Spent)
	}
	if !progress.Remaining.Equal(money("300.00")) {
		t.Errorf("remaining = %s, want 300.00", progress.Remaining)
	}
	if progress.Percentage != 40.0 {
		t.Errorf("percentage = %v, want 40.0", progress.Percentage)
	}
	if progress.Exceeded {
		t.Error("goal should not be exceeded")
	}
	if !progress.Period.Start.Equal(date(2024, time.November, 1)) || !progress.Period.End.Equal(date(2024, time.November, 30)) {
		t.Errorf("period = [%v, %v], want November 2024", progress.Period.Start, progress.Period.End)
	}
}

func TestComputeGoalProgress_WindowFloats(t *testing.T) {
	categoryID := uuid.New()
	goal := &entity.BudgetGoal{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Amount:     money("500.00"),
		Period:     entity.GoalPeriodMonthly,
	}

	transactions := []*entity.Transaction{
		expense(date(2024, time.October, 15), "400.00", &categoryID),
		expense(date(2024, time.November, 5), "120.00", &categoryID),
	}

	october := ComputeGoalProgress(goal, transactions, date(2024, time.October, 20))
	november := ComputeGoalProgress(goal, transactions, date(2024, time.November, 20))

	if !october.Spent.Equal(money("400.00")) {
		t.Errorf("october spent = %s, want 400.00", october.Spent)
	}
	if !november.Spent.Equal(money("120.00")) {
		t.Errorf("november spent = %s, want 120.00", november.Spent)
	}
}

func TestComputeGoalProgress_Weekly(t *testing.T) {
	categoryID := uuid.New()
	goal := &entity.BudgetGoal{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Amount:     money("100.00"),
		Period:     entity.GoalPeriodWeekly,
	}

	transactions := []*entity.Transaction{
		expense(date(2024, time.November, 11), "30.00", &categoryID), // Monday
		expense(date(2024, time.November, 17), "20.00", &categoryID), // Sunday
		expense(date(2024, time.November, 18), "50.00", &categoryID), // next Monday
	}

	// Wednesday the 13th resolves to the Mon 11 .. Sun 17 window.
	progress := ComputeGoalProgress(goal, transactions, date(2024, time.November, 13))

	if !progress.Spent.Equal(money("50.00")) {
		t.Errorf("spent = %s, want 50.00", progress.Spent)
	}
	if !progress.Period.Start.Equal(date(2024, time.November, 11)) || !progress.Period.End.Equal(date(2024, time.November, 17)) {
		t.Errorf("period = [%v, %v], want Mon 11 .. Sun 17", progress.Period.Start, progress.Period.End)
	}
}

func TestComputeGoalProgress_ZeroBudget(t *testing.T) {
	categoryID := uuid.New()
	goal := &entity.BudgetGoal{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Amount:     decimal.Zero,
		Period:     entity.GoalPeriodMonthly,
	}

	transactions := []*entity.Transaction{
		expense(date(2024, time.November, 5), "120.00", &categoryID),
	}

	progress := ComputeGoalProgress(goal, transactions, date(2024, time.November, 10))

	if progress.Percentage != 0 {
		t.Errorf("percentage = %v, want 0 for zero budget", progress.Percentage)
	}
	if progress.Exceeded {
		t.Error("a zero budget is never exceeded")
	}
}

func TestComputeGoalProgress_Exceeded(t *testing.T) {
	categoryID := uuid.New()
	goal := &entity.BudgetGoal{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Amount:     money("100.00"),
		Period:     entity.GoalPeriodMonthly,
	}

	transactions := []*entity.Transaction{
		expense(date(2024, time.November, 5), "150.00", &categoryID),
	}

	progress := ComputeGoalProgress(goal, transactions, date(2024, time.November, 10))

	if !progress.Exceeded {
		t.Error("goal should be exceeded")
	}
	if progress.Percentage != 150.0 {
		t.Errorf("percentage = %v, want 150.0", progress.Percentage)
	}
	if !progress.Remaining.Equal(money("-50.00")) {
		t.Errorf("remaining = %s, want -50.00", progress.Remaining)
	}
}

func TestComputeBudgetStatus(t *testing.T) {
	category := &entity.Category{
		ID:            uuid.New(),
		Name:          "Groceries",
		MonthlyBudget: money("500.00"),
	}

	transactions := []*entity.Transaction{
		expense(date(2024, time.November, 3), "120.00", &category.ID),
		expense(date(2024, time.November, 21), "80.00", &category.ID),
		expense(date(2024, time.December, 1), "300.00", &category.ID),
	}

	status := ComputeBudgetStatus(category, transactions, 2024, time.November)

	if !status.Spent.Equal(money("200.00")) {
		t.Errorf("spent = %s, want 200.00", status.Spent)
	}
	if !status.Remaining.Equal(money("300.00")) {
		t.Errorf("remaining = %s, want 300.00", status.Remaining)
	}
	if status.Percentage != 40.0 {
		t.Errorf("percentage = %v, want 40.0", status.Percentage)
	}
}

func TestComputeBudgetStatus_NoBudgetSet(t *testing.T) {
	category := &entity.Category{ID: uuid.New(), Name: "Misc", MonthlyBudget: decimal.Zero}

	transactions := []*entity.Transaction{
		expense(date(2024, time.November, 3), "75.00", &category.ID),
	}

	status := ComputeBudgetStatus(category, transactions, 2024, time.November)

	if status.Percentage != 0 {
		t.Errorf("percentage = %v, want 0 when no budget is set", status.Percentage)
	}
	if !status.Remaining.Equal(money("-75.00")) {
		t.Errorf("remaining = %s, want -75.00", status.Remaining)
	}
}
