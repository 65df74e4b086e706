// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/application/usecase/category"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	Description   string  `json:"description,omitempty" binding:"omitempty,max=500"`
	MonthlyBudget float64 `json:"monthly_budget,omitempty" binding:"omitempty,min=0"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,max=500"`
	MonthlyBudget *float64 `json:"monthly_budget,omitempty" binding:"omitempty,min=0"`
}

// BudgetStatusResponse represents a category's month budget status in API responses.
type BudgetStatusResponse struct {
	Spent      string  `json:"spent"`
	Budget     string  `json:"budget"`
	Remaining  string  `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID            string                `json:"id"`
	UserID        string                `json:"user_id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	MonthlyBudget string                `json:"monthly_budget"`
	BudgetStatus  *BudgetStatusResponse `json:"budget_status,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToBudgetStatusResponse converts a BudgetStatus to a BudgetStatusResponse DTO.
func ToBudgetStatusResponse(status entity.BudgetStatus) BudgetStatusResponse {
	return BudgetStatusResponse{
		Spent:      status.Spent.String(),
		Budget:     status.Budget.String(),
		Remaining:  status.Remaining.String(),
		Percentage: status.Percentage,
	}
}

// ToCategoryResponse converts a Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:            cat.ID.String(),
		UserID:        cat.UserID.String(),
		Name:          cat.Name,
		Description:   cat.Description,
		MonthlyBudget: cat.MonthlyBudget.String(),
		CreatedAt:     cat.CreatedAt,
		UpdatedAt:     cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts a ListCategoriesOutput to a CategoryListResponse.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	items := make([]CategoryResponse, len(output.Categories))
	for i, cws := range output.Categories {
		item := ToCategoryResponse(cws.Category)
		status := ToBudgetStatusResponse(cws.BudgetStatus)
		item.BudgetStatus = &status
		items[i] = item
	}
	return CategoryListResponse{Categories: items}
}
