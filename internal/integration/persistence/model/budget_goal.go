// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// BudgetGoalModel represents the budget_goals table in the database.
type BudgetGoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Period        string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndDate       *time.Time      `gorm:"type:date"`
	AlertOnExceed bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the BudgetGoalModel.
func (BudgetGoalModel) TableName() string {
	return "budget_goals"
}

// ToEntity converts a BudgetGoalModel to a domain BudgetGoal entity.
func (m *BudgetGoalModel) ToEntity() *entity.BudgetGoal {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.BudgetGoal{
		ID:            m.ID,
		UserID:        m.UserID,
		CategoryID:    m.CategoryID,
		Amount:        m.Amount,
		Period:        entity.GoalPeriod(m.Period),
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		AlertOnExceed: m.AlertOnExceed,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// BudgetGoalFromEntity creates a BudgetGoalModel from a domain BudgetGoal entity.
func BudgetGoalFromEntity(goal *entity.BudgetGoal) *BudgetGoalModel {
	var deletedAt gorm.DeletedAt
	if goal.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *goal.DeletedAt, Valid: true}
	}

	return &BudgetGoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		CategoryID:    goal.CategoryID,
		Amount:        goal.Amount,
		Period:        string(goal.Period),
		StartDate:     goal.StartDate,
		EndDate:       goal.EndDate,
		AlertOnExceed: goal.AlertOnExceed,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
