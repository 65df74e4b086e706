// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/domain/ledger"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil pointer fields keep their current value; SourceID and CategoryID are
// replaced as a pair whenever the type or either reference changes.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Date          *time.Time
	Description   *string
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	SourceID      *uuid.UUID
	CategoryID    *uuid.UUID
	ReceiptPath   *string
	UpdateRefs    bool
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	sourceRepo      adapter.IncomeSourceRepository
	categoryRepo    adapter.CategoryRepository
	alertNotifier   *budgetAlertNotifier
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	sourceRepo adapter.IncomeSourceRepository,
	categoryRepo adapter.CategoryRepository,
	budgetGoalRepo adapter.BudgetGoalRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		sourceRepo:      sourceRepo,
		categoryRepo:    categoryRepo,
		alertNotifier: &budgetAlertNotifier{
			budgetGoalRepo:  budgetGoalRepo,
			transactionRepo: transactionRepo,
			categoryRepo:    categoryRepo,
			userRepo:        userRepo,
			emailService:    emailService,
		},
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	// Find transaction and check ownership
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	// Apply partial updates
	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.UpdateRefs {
		transaction.SourceID = input.SourceID
		transaction.CategoryID = input.CategoryID
	}
	if input.ReceiptPath != nil {
		transaction.ReceiptPath = *input.ReceiptPath
	}
	transaction.UpdatedAt = time.Now().UTC()

	if err := validateCommonFields(transaction.Description, transaction.Amount); err != nil {
		return nil, err
	}

	// The updated state must still satisfy the classification rules
	if err := ledger.ValidateClassification(transaction); err != nil {
		return nil, err
	}
	if err := validateSourceRef(ctx, uc.sourceRepo, input.UserID, transaction.SourceID); err != nil {
		return nil, err
	}
	if err := validateCategoryRef(ctx, uc.categoryRepo, input.UserID, transaction.CategoryID); err != nil {
		return nil, err
	}

	// Save changes
	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	uc.alertNotifier.notify(ctx, transaction)

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
