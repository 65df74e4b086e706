// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// IncomeSource represents a user-defined label for classifying income transactions.
type IncomeSource struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewIncomeSource creates a new IncomeSource entity.
func NewIncomeSource(userID uuid.UUID, name, description string) *IncomeSource {
	now := time.Now().UTC()

	return &IncomeSource{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
