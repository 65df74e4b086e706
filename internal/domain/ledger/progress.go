package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// GoalProgress represents the spending position of a budget goal inside its
// current period window.
type GoalProgress struct {
	Period     valueobject.Period
	Spent      decimal.Decimal
	Budget     decimal.Decimal
	Remaining  decimal.Decimal
	Percentage float64
	Exceeded   bool
}

// ComputeGoalProgress evaluates a budget goal against the period window
// containing the evaluation date. The window floats: the same goal evaluated
// next month reports next month's spending. A non-positive goal amount
// reports zero percent used.
func ComputeGoalProgress(goal *entity.BudgetGoal, transactions []*entity.Transaction, evaluationDate time.Time) GoalProgress {
	period := valueobject.ResolvePeriod(goalPeriodKind(goal.Period), evaluationDate)
	spent := TotalForCategory(transactions, goal.CategoryID, period)

	return GoalProgress{
		Period:     period,
		Spent:      spent,
		Budget:     goal.Amount,
		Remaining:  goal.Amount.Sub(spent),
		Percentage: percentageOf(spent, goal.Amount),
		Exceeded:   goal.Amount.IsPositive() && spent.GreaterThan(goal.Amount),
	}
}

// ComputeBudgetStatus evaluates a category's monthly budget against the
// calendar month (year, month). A zero budget means no budget is set and
// reports zero percent used.
func ComputeBudgetStatus(category *entity.Category, transactions []*entity.Transaction, year int, month time.Month) entity.BudgetStatus {
	period := valueobject.MonthPeriod(year, month)
	spent := TotalForCategory(transactions, category.ID, period)

	return entity.BudgetStatus{
		Spent:      spent,
		Budget:     category.MonthlyBudget,
		Remaining:  category.MonthlyBudget.Sub(spent),
		Percentage: percentageOf(spent, category.MonthlyBudget),
	}
}

// percentageOf returns spent/budget as a percentage rounded to two decimal
// places, or zero when the budget is not positive.
func percentageOf(spent, budget decimal.Decimal) float64 {
	if !budget.IsPositive() {
		return 0
	}
	pct, _ := spent.Mul(decimal.NewFromInt(100)).Div(budget).Round(2).Float64()
	return pct
}

// goalPeriodKind maps a goal's recurring period onto a period kind.
func goalPeriodKind(period entity.GoalPeriod) valueobject.PeriodKind {
	switch period {
	case entity.GoalPeriodWeekly:
		return valueobject.PeriodWeekly
	case entity.GoalPeriodYearly:
		return valueobject.PeriodYearly
	default:
		return valueobject.PeriodMonthly
	}
}
