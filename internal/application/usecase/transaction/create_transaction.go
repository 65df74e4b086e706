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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	SourceID    *uuid.UUID
	CategoryID  *uuid.UUID
	ReceiptPath string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	sourceRepo      adapter.IncomeSourceRepository
	categoryRepo    adapter.CategoryRepository
	alertNotifier   *budgetAlertNotifier
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	sourceRepo adapter.IncomeSourceRepository,
	categoryRepo adapter.CategoryRepository,
	budgetGoalRepo adapter.BudgetGoalRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
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

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"date is required",
			nil,
		)
	}
	if err := validateCommonFields(input.Description, input.Amount); err != nil {
		return nil, err
	}

	// Create transaction entity
	transaction := entity.NewTransaction(
		input.UserID,
		input.Date,
		input.Description,
		input.Amount,
		input.Type,
		input.SourceID,
		input.CategoryID,
		input.ReceiptPath,
	)

	// The type must match the reference kind exactly
	if err := ledger.ValidateClassification(transaction); err != nil {
		return nil, err
	}

	// Validate references exist and belong to the user
	if err := validateSourceRef(ctx, uc.sourceRepo, input.UserID, input.SourceID); err != nil {
		return nil, err
	}
	if err := validateCategoryRef(ctx, uc.categoryRepo, input.UserID, input.CategoryID); err != nil {
		return nil, err
	}

	// Save transaction to database
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// Queue budget alerts; failures here never fail the creation
	uc.alertNotifier.notify(ctx, transaction)

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
