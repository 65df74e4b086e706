// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// IncomeSourceRepository defines the interface for income source persistence operations.
type IncomeSourceRepository interface {
	// Create creates a new income source in the database.
	Create(ctx context.Context, source *entity.IncomeSource) error

	// FindByID retrieves an income source by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeSource, error)

	// FindByUser retrieves all income sources for a given user, ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.IncomeSource, error)

	// ExistsByUserAndName checks if a source with the given name exists for the user.
	ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error)

	// Update updates an existing income source in the database.
	Update(ctx context.Context, source *entity.IncomeSource) error

	// Delete soft-deletes an income source and nulls the reference on its
	// transactions.
	Delete(ctx context.Context, id uuid.UUID) error
}
