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

// incomeSourceRepository implements the adapter.IncomeSourceRepository interface.
type incomeSourceRepository struct {
	db *gorm.DB
}

// NewIncomeSourceRepository creates a new income source repository instance.
func NewIncomeSourceRepository(db *gorm.DB) adapter.IncomeSourceRepository {
	return &incomeSourceRepository{
		db: db,
	}
}

// Create creates a new income source in the database.
func (r *incomeSourceRepository) Create(ctx context.Context, source *entity.IncomeSource) error {
	sourceModel := model.IncomeSourceFromEntity(source)
	result := r.db.WithContext(ctx).Create(sourceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an income source by its ID.
func (r *incomeSourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeSource, error) {
	var sourceModel model.IncomeSourceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&sourceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeSourceNotFound
		}
		return nil, result.Error
	}
	return sourceModel.ToEntity(), nil
}

// FindByUser retrieves all income sources for a given user, ordered by name.
func (r *incomeSourceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.IncomeSource, error) {
	var sourceModels []model.IncomeSourceModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&sourceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sources := make([]*entity.IncomeSource, len(sourceModels))
	for i, sm := range sourceModels {
		sources[i] = sm.ToEntity()
	}
	return sources, nil
}

// ExistsByUserAndName checks if a source with the given name exists for the user.
func (r *incomeSourceRepository) ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.IncomeSourceModel{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing income source in the database.
func (r *incomeSourceRepository) Update(ctx context.Context, source *entity.IncomeSource) error {
	sourceModel := model.IncomeSourceFromEntity(source)
	result := r.db.WithContext(ctx).Save(sourceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes an income source and nulls the reference on its
// transactions so their history survives under the Unassigned bucket.
func (r *incomeSourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TransactionModel{}).
			Where("source_id = ?", id).
			Update("source_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.IncomeSourceModel{}, "id = ?", id).Error
	})
}
