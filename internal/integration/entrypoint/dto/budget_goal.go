// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/application/usecase/budgetgoal"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/domain/ledger"
)

// CreateBudgetGoalRequest represents the request body for budget goal creation.
type CreateBudgetGoalRequest struct {
	CategoryID    string  `json:"category_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Period        string  `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
	StartDate     string  `json:"start_date,omitempty"`
	AlertOnExceed *bool   `json:"alert_on_exceed,omitempty"`
}

// UpdateBudgetGoalRequest represents the request body for budget goal update.
type UpdateBudgetGoalRequest struct {
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Period        *string  `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
	AlertOnExceed *bool    `json:"alert_on_exceed,omitempty"`
}

// GoalProgressResponse represents a goal's window progress in API responses.
type GoalProgressResponse struct {
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Spent       string  `json:"spent"`
	Budget      string  `json:"budget"`
	Remaining   string  `json:"remaining"`
	Percentage  float64 `json:"percentage"`
	Exceeded    bool    `json:"exceeded"`
}

// BudgetGoalResponse represents a single budget goal in API responses.
type BudgetGoalResponse struct {
	ID            string                `json:"id"`
	UserID        string                `json:"user_id"`
	CategoryID    string                `json:"category_id"`
	CategoryName  string                `json:"category_name,omitempty"`
	Amount        string                `json:"amount"`
	Period        string                `json:"period"`
	StartDate     string                `json:"start_date"`
	AlertOnExceed bool                  `json:"alert_on_exceed"`
	Progress      *GoalProgressResponse `json:"progress,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// BudgetGoalListResponse represents the response for listing budget goals.
type BudgetGoalListResponse struct {
	Goals []BudgetGoalResponse `json:"goals"`
}

// ToGoalProgressResponse converts a GoalProgress to a GoalProgressResponse DTO.
func ToGoalProgressResponse(progress ledger.GoalProgress) GoalProgressResponse {
	return GoalProgressResponse{
		PeriodStart: progress.Period.Start.Format("2006-01-02"),
		PeriodEnd:   progress.Period.End.Format("2006-01-02"),
		Spent:       progress.Spent.String(),
		Budget:      progress.Budget.String(),
		Remaining:   progress.Remaining.String(),
		Percentage:  progress.Percentage,
		Exceeded:    progress.Exceeded,
	}
}

// ToBudgetGoalResponse converts a BudgetGoal entity to a BudgetGoalResponse DTO.
func ToBudgetGoalResponse(goal *entity.BudgetGoal) BudgetGoalResponse {
	return BudgetGoalResponse{
		ID:            goal.ID.String(),
		UserID:        goal.UserID.String(),
		CategoryID:    goal.CategoryID.String(),
		Amount:        goal.Amount.String(),
		Period:        string(goal.Period),
		StartDate:     goal.StartDate.Format("2006-01-02"),
		AlertOnExceed: goal.AlertOnExceed,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// ToBudgetGoalListResponse converts a ListBudgetGoalsOutput to a BudgetGoalListResponse.
func ToBudgetGoalListResponse(output *budgetgoal.ListBudgetGoalsOutput) BudgetGoalListResponse {
	items := make([]BudgetGoalResponse, len(output.Goals))
	for i, gwp := range output.Goals {
		item := ToBudgetGoalResponse(gwp.Goal)
		item.CategoryName = gwp.CategoryName
		progress := ToGoalProgressResponse(gwp.Progress)
		item.Progress = &progress
		items[i] = item
	}
	return BudgetGoalListResponse{Goals: items}
}
