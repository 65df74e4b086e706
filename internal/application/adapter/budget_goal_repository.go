// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// BudgetGoalRepository defines the interface for budget goal persistence operations.
type BudgetGoalRepository interface {
	// Create creates a new budget goal in the database.
	Create(ctx context.Context, goal *entity.BudgetGoal) error

	// FindByID retrieves a budget goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetGoal, error)

	// FindByUser retrieves all budget goals for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetGoal, error)

	// ExistsByUserAndCategoryAndPeriod checks if a goal already exists for the
	// given user, category and period kind.
	ExistsByUserAndCategoryAndPeriod(ctx context.Context, userID, categoryID uuid.UUID, period entity.GoalPeriod) (bool, error)

	// Update updates an existing budget goal in the database.
	Update(ctx context.Context, goal *entity.BudgetGoal) error

	// Delete soft-deletes a budget goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
