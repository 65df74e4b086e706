package transaction

import (
	"context"
	"fmt"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/domain/ledger"
)

// budgetAlertNotifier queues budget exceeded emails after an expense is
// recorded. Alert failures never fail the transaction mutation.
type budgetAlertNotifier struct {
	budgetGoalRepo  adapter.BudgetGoalRepository
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	userRepo        adapter.UserRepository
	emailService    adapter.EmailService
}

// notify evaluates all alerting goals on the expense's category and queues
// an alert email for each goal whose window total now exceeds its amount.
func (n *budgetAlertNotifier) notify(ctx context.Context, tx *entity.Transaction) {
	if n.emailService == nil || tx.Type != entity.TransactionTypeExpense || tx.CategoryID == nil {
		return
	}

	user, err := n.userRepo.FindByID(ctx, tx.UserID)
	if err != nil || !user.EmailNotifications || !user.BudgetAlerts {
		return
	}

	goals, err := n.budgetGoalRepo.FindByUser(ctx, tx.UserID)
	if err != nil {
		return
	}

	for _, goal := range goals {
		if !goal.AlertOnExceed || goal.CategoryID != *tx.CategoryID {
			continue
		}

		progress := ledger.ComputeGoalProgress(goal, nil, tx.Date)
		transactions, err := n.transactionRepo.FindByUserAndPeriod(ctx, tx.UserID, progress.Period.Start, progress.Period.End)
		if err != nil {
			continue
		}
		progress = ledger.ComputeGoalProgress(goal, transactions, tx.Date)
		if !progress.Exceeded {
			continue
		}

		category, err := n.categoryRepo.FindByID(ctx, goal.CategoryID)
		if err != nil {
			continue
		}

		_ = n.emailService.QueueBudgetAlertEmail(ctx, adapter.QueueBudgetAlertInput{
			UserID:       user.ID.String(),
			UserEmail:    user.Email,
			UserName:     user.Name,
			CategoryName: category.Name,
			BudgetAmount: progress.Budget.StringFixed(2),
			SpentAmount:  progress.Spent.StringFixed(2),
			Percentage:   fmt.Sprintf("%.2f", progress.Percentage),
			PeriodLabel:  fmt.Sprintf("%s to %s", progress.Period.Start.Format("2006-01-02"), progress.Period.End.Format("2006-01-02")),
		})
	}
}
