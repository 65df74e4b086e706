// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// EmailQueueRepository persists the outgoing email queue.
type EmailQueueRepository interface {
	// Create enqueues a new email job.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs returns jobs that are due for delivery, oldest
	// schedule first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update persists the job's current state.
	Update(ctx context.Context, job *entity.EmailJob) error

	// GetByID returns a single job.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error)

	// GetByRecipient returns all jobs queued for an address. The
	// integration suite uses it to assert on queued alerts.
	GetByRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error)

	// DeleteOldSentJobs prunes sent jobs older than the given number of
	// days and returns how many rows were removed.
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}
