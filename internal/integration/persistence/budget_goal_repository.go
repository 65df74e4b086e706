// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// budgetGoalRepository implements the adapter.BudgetGoalRepository interface.
type budgetGoalRepository struct {
	db *gorm.DB
}

// NewBudgetGoalRepository creates a new budget goal repository instance.
func NewBudgetGoalRepository(db *gorm.DB) adapter.BudgetGoalRepository {
	return &budgetGoalRepository{
		db: db,
	}
}

// Create creates a new budget goal in the database.
func (r *budgetGoalRepository) Create(ctx context.Context, goal *entity.BudgetGoal) error {
	goalModel := model.BudgetGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a budget goal by its ID.
func (r *budgetGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetGoal, error) {
	var goalModel model.BudgetGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUser retrieves all budget goals for a given user.
func (r *budgetGoalRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetGoal, error) {
	var goalModels []model.BudgetGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.BudgetGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// ExistsByUserAndCategoryAndPeriod checks if a goal already exists for the
// given user, category and period kind.
func (r *budgetGoalRepository) ExistsByUserAndCategoryAndPeriod(ctx context.Context, userID, categoryID uuid.UUID, period entity.GoalPeriod) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.BudgetGoalModel{}).
		Where("user_id = ? AND category_id = ? AND period = ?", userID, categoryID, string(period)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing budget goal in the database.
func (r *budgetGoalRepository) Update(ctx context.Context, goal *entity.BudgetGoal) error {
	goalModel := model.BudgetGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a budget goal from the database.
func (r *budgetGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetGoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
