// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/application/usecase/savingsgoal"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateSavingsGoalRequest represents the request body for savings goal creation.
type CreateSavingsGoalRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	TargetDate   *string `json:"target_date,omitempty"`
}

// UpdateSavingsGoalRequest represents the request body for savings goal update.
type UpdateSavingsGoalRequest struct {
	Name            *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	TargetAmount    *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	TargetDate      *string  `json:"target_date,omitempty"`
	ClearTargetDate bool     `json:"clear_target_date,omitempty"`
}

// ContributeSavingsGoalRequest represents the request body for a contribution.
// Negative amounts withdraw from the goal.
type ContributeSavingsGoalRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// SavingsGoalResponse represents a single savings goal in API responses.
type SavingsGoalResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Name               string    `json:"name"`
	TargetAmount       string    `json:"target_amount"`
	CurrentAmount      string    `json:"current_amount"`
	TargetDate         *string   `json:"target_date,omitempty"`
	ProgressPercentage float64   `json:"progress_percentage"`
	DaysRemaining      *int      `json:"days_remaining,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SavingsGoalListResponse represents the response for listing savings goals.
type SavingsGoalListResponse struct {
	Goals []SavingsGoalResponse `json:"goals"`
}

// ToSavingsGoalResponse converts a SavingsGoal entity to a SavingsGoalResponse DTO.
func ToSavingsGoalResponse(goal *entity.SavingsGoal) SavingsGoalResponse {
	response := SavingsGoalResponse{
		ID:                 goal.ID.String(),
		UserID:             goal.UserID.String(),
		Name:               goal.Name,
		TargetAmount:       goal.TargetAmount.String(),
		CurrentAmount:      goal.CurrentAmount.String(),
		ProgressPercentage: goal.ProgressPercentage(),
		CreatedAt:          goal.CreatedAt,
		UpdatedAt:          goal.UpdatedAt,
	}

	if goal.TargetDate != nil {
		targetDateStr := goal.TargetDate.Format("2006-01-02")
		response.TargetDate = &targetDateStr
	}

	return response
}

// ToSavingsGoalListResponse converts a ListSavingsGoalsOutput to a SavingsGoalListResponse.
func ToSavingsGoalListResponse(output *savingsgoal.ListSavingsGoalsOutput) SavingsGoalListResponse {
	items := make([]SavingsGoalResponse, len(output.Goals))
	for i, gwp := range output.Goals {
		item := ToSavingsGoalResponse(gwp.Goal)
		item.ProgressPercentage = gwp.ProgressPercentage
		item.DaysRemaining = gwp.DaysRemaining
		items[i] = item
	}
	return SavingsGoalListResponse{Goals: items}
}
