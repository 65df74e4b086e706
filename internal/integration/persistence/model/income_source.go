// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// IncomeSourceModel represents the income_sources table in the database.
type IncomeSourceModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the IncomeSourceModel.
func (IncomeSourceModel) TableName() string {
	return "income_sources"
}

// ToEntity converts an IncomeSourceModel to a domain IncomeSource entity.
func (m *IncomeSourceModel) ToEntity() *entity.IncomeSource {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.IncomeSource{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// IncomeSourceFromEntity creates an IncomeSourceModel from a domain IncomeSource entity.
func IncomeSourceFromEntity(source *entity.IncomeSource) *IncomeSourceModel {
	var deletedAt gorm.DeletedAt
	if source.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *source.DeletedAt, Valid: true}
	}

	return &IncomeSourceModel{
		ID:          source.ID,
		UserID:      source.UserID,
		Name:        source.Name,
		Description: source.Description,
		CreatedAt:   source.CreatedAt,
		UpdatedAt:   source.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
