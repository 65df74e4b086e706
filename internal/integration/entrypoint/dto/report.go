// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"

	"github.com/budgetwise/backend/internal/application/usecase/report"
)

// MonthComparisonResponse represents one month of the comparison series.
type MonthComparisonResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

// ReportResponse represents the response for report generation.
type ReportResponse struct {
	Type               string                    `json:"type"`
	PeriodStart        string                    `json:"period_start"`
	PeriodEnd          string                    `json:"period_end"`
	Totals             TransactionTotalsResponse `json:"totals"`
	IncomeBySource     []BucketResponse          `json:"income_by_source"`
	ExpensesByCategory []BucketResponse          `json:"expenses_by_category"`
	DailyExpenses      []DayTotalResponse        `json:"daily_expenses"`
	MonthlyComparison  []MonthComparisonResponse `json:"monthly_comparison"`
}

// ToReportResponse converts a GenerateReportOutput to a ReportResponse.
func ToReportResponse(output *report.GenerateReportOutput) ReportResponse {
	comparison := make([]MonthComparisonResponse, len(output.MonthlyComparison))
	for i, month := range output.MonthlyComparison {
		comparison[i] = MonthComparisonResponse{
			Month:    fmt.Sprintf("%04d-%02d", month.Year, int(month.Month)),
			Income:   month.Income.String(),
			Expenses: month.Expenses.String(),
			Balance:  month.Balance.String(),
		}
	}

	return ReportResponse{
		Type:               string(output.Type),
		PeriodStart:        output.Period.Start.Format("2006-01-02"),
		PeriodEnd:          output.Period.End.Format("2006-01-02"),
		Totals:             ToTransactionTotalsResponse(output.Totals),
		IncomeBySource:     ToBucketResponses(output.IncomeBySource),
		ExpensesByCategory: ToBucketResponses(output.ExpensesByCategory),
		DailyExpenses:      ToDayTotalResponses(output.DailyExpenses),
		MonthlyComparison:  comparison,
	}
}
