// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
	"github.com/budgetwise/backend/internal/domain/ledger"
)

// BucketResponse represents a breakdown bucket in API responses.
// The ID is empty for the Unassigned bucket.
type BucketResponse struct {
	ID               string `json:"id,omitempty"`
	Name             string `json:"name"`
	Total            string `json:"total"`
	TransactionCount int    `json:"transaction_count"`
}

// DayTotalResponse represents one day of the daily expense series.
type DayTotalResponse struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

// CategoryBudgetStatusResponse pairs a category with its month budget status.
type CategoryBudgetStatusResponse struct {
	CategoryID   string               `json:"category_id"`
	CategoryName string               `json:"category_name"`
	Status       BudgetStatusResponse `json:"status"`
}

// DashboardOverviewResponse represents the response for the dashboard overview.
type DashboardOverviewResponse struct {
	PeriodStart        string                         `json:"period_start"`
	PeriodEnd          string                         `json:"period_end"`
	Totals             TransactionTotalsResponse      `json:"totals"`
	IncomeBySource     []BucketResponse               `json:"income_by_source"`
	ExpensesByCategory []BucketResponse               `json:"expenses_by_category"`
	DailyExpenses      []DayTotalResponse             `json:"daily_expenses"`
	BudgetStatuses     []CategoryBudgetStatusResponse `json:"budget_statuses"`
	RecentTransactions []TransactionResponse          `json:"recent_transactions"`
}

// ToBucketResponses converts breakdown buckets to BucketResponse DTOs.
func ToBucketResponses(buckets []ledger.Bucket) []BucketResponse {
	items := make([]BucketResponse, len(buckets))
	for i, bucket := range buckets {
		item := BucketResponse{
			Name:             bucket.Name,
			Total:            bucket.Total.String(),
			TransactionCount: bucket.TransactionCount,
		}
		if bucket.ID != nil {
			item.ID = bucket.ID.String()
		}
		items[i] = item
	}
	return items
}

// ToDayTotalResponses converts a daily series to DayTotalResponse DTOs.
func ToDayTotalResponses(days []ledger.DayTotal) []DayTotalResponse {
	items := make([]DayTotalResponse, len(days))
	for i, day := range days {
		items[i] = DayTotalResponse{
			Date:  day.Date.Format("2006-01-02"),
			Total: day.Total.String(),
		}
	}
	return items
}

// ToDashboardOverviewResponse converts a GetOverviewOutput to a DashboardOverviewResponse.
func ToDashboardOverviewResponse(output *dashboard.GetOverviewOutput) DashboardOverviewResponse {
	statuses := make([]CategoryBudgetStatusResponse, len(output.BudgetStatuses))
	for i, status := range output.BudgetStatuses {
		statuses[i] = CategoryBudgetStatusResponse{
			CategoryID:   status.CategoryID.String(),
			CategoryName: status.CategoryName,
			Status:       ToBudgetStatusResponse(status.Status),
		}
	}

	recent := make([]TransactionResponse, len(output.RecentTransactions))
	for i, txn := range output.RecentTransactions {
		recent[i] = ToTransactionWithRefsResponse(txn)
	}

	return DashboardOverviewResponse{
		PeriodStart:        output.Period.Start.Format("2006-01-02"),
		PeriodEnd:          output.Period.End.Format("2006-01-02"),
		Totals:             ToTransactionTotalsResponse(output.Totals),
		IncomeBySource:     ToBucketResponses(output.IncomeBySource),
		ExpensesByCategory: ToBucketResponses(output.ExpensesByCategory),
		DailyExpenses:      ToDayTotalResponses(output.DailyExpenses),
		BudgetStatuses:     statuses,
		RecentTransactions: recent,
	}
}
