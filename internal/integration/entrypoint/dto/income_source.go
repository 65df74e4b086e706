// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateIncomeSourceRequest represents the request body for income source creation.
type CreateIncomeSourceRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description,omitempty" binding:"omitempty,max=500"`
}

// UpdateIncomeSourceRequest represents the request body for income source update.
type UpdateIncomeSourceRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
}

// IncomeSourceResponse represents a single income source in API responses.
type IncomeSourceResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IncomeSourceListResponse represents the response for listing income sources.
type IncomeSourceListResponse struct {
	Sources []IncomeSourceResponse `json:"sources"`
}

// ToIncomeSourceResponse converts an IncomeSource entity to an IncomeSourceResponse DTO.
func ToIncomeSourceResponse(source *entity.IncomeSource) IncomeSourceResponse {
	return IncomeSourceResponse{
		ID:          source.ID.String(),
		UserID:      source.UserID.String(),
		Name:        source.Name,
		Description: source.Description,
		CreatedAt:   source.CreatedAt,
		UpdatedAt:   source.UpdatedAt,
	}
}

// ToIncomeSourceListResponse converts income source entities to an IncomeSourceListResponse.
func ToIncomeSourceListResponse(sources []*entity.IncomeSource) IncomeSourceListResponse {
	items := make([]IncomeSourceResponse, len(sources))
	for i, source := range sources {
		items[i] = ToIncomeSourceResponse(source)
	}
	return IncomeSourceListResponse{Sources: items}
}
