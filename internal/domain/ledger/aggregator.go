// Package ledger implements in-memory aggregation over a user's transactions.
// All functions operate on a caller-supplied, already user-scoped collection;
// this package never filters by user and never touches persistence.
package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// UnassignedName labels the bucket that collects transactions whose source
// or category reference has been nulled (for example after the referenced
// record was deleted).
const UnassignedName = "Unassigned"

// Bucket represents one group in a breakdown: all transactions sharing a
// source or category, with their summed total.
type Bucket struct {
	ID               *uuid.UUID // nil for the Unassigned bucket
	Name             string
	Total            decimal.Decimal
	TransactionCount int
}

// DayTotal represents the expense total for a single calendar day.
type DayTotal struct {
	Date  time.Time
	Total decimal.Decimal
}

// TotalByType sums the amounts of all transactions of the given type whose
// date falls inside the period. An empty result is zero, never an error.
func TotalByType(transactions []*entity.Transaction, transactionType entity.TransactionType, period valueobject.Period) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != transactionType || !period.Contains(tx.Date) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}

// Totals computes income, expense and balance totals for the period.
func Totals(transactions []*entity.Transaction, period valueobject.Period) entity.TransactionTotals {
	income := TotalByType(transactions, entity.TransactionTypeIncome, period)
	expenses := TotalByType(transactions, entity.TransactionTypeExpense, period)
	return entity.TransactionTotals{
		IncomeTotal:  income,
		ExpenseTotal: expenses,
		Balance:      income.Sub(expenses),
	}
}

// TotalForCategory sums expense amounts for one category inside the period.
func TotalForCategory(transactions []*entity.Transaction, categoryID uuid.UUID, period valueobject.Period) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense || tx.CategoryID == nil || *tx.CategoryID != categoryID {
			continue
		}
		if !period.Contains(tx.Date) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}

// BreakdownBySource groups income transactions in the period by their income
// source and returns the buckets sorted by total, largest first. Ties keep
// the order in which the sources were first seen. Transactions without a
// source are collected under the Unassigned bucket.
func BreakdownBySource(transactions []*entity.Transaction, period valueobject.Period, sources []*entity.IncomeSource) []Bucket {
	names := make(map[uuid.UUID]string, len(sources))
	for _, s := range sources {
		names[s.ID] = s.Name
	}
	return breakdown(transactions, entity.TransactionTypeIncome, period, names, func(tx *entity.Transaction) *uuid.UUID {
		return tx.SourceID
	})
}

// BreakdownByCategory groups expense transactions in the period by their
// category, with the same ordering contract as BreakdownBySource.
func BreakdownByCategory(transactions []*entity.Transaction, period valueobject.Period, categories []*entity.Category) []Bucket {
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return breakdown(transactions, entity.TransactionTypeExpense, period, names, func(tx *entity.Transaction) *uuid.UUID {
		return tx.CategoryID
	})
}

// breakdown builds grouped totals for one transaction type. Grouping keys
// are stable: buckets appear in first-seen order before sorting so that
// equal totals keep a deterministic order.
func breakdown(
	transactions []*entity.Transaction,
	transactionType entity.TransactionType,
	period valueobject.Period,
	names map[uuid.UUID]string,
	keyOf func(*entity.Transaction) *uuid.UUID,
) []Bucket {
	const unassignedKey = "unassigned"

	index := make(map[string]int)
	buckets := make([]Bucket, 0)

	for _, tx := range transactions {
		if tx.Type != transactionType || !period.Contains(tx.Date) {
			continue
		}

		id := keyOf(tx)
		key := unassignedKey
		if id != nil {
			key = id.String()
		}

		i, ok := index[key]
		if !ok {
			name := UnassignedName
			if id != nil {
				if n, found := names[*id]; found {
					name = n
				}
			}
			buckets = append(buckets, Bucket{ID: id, Name: name, Total: decimal.Zero})
			i = len(buckets) - 1
			index[key] = i
		}

		buckets[i].Total = buckets[i].Total.Add(tx.Amount)
		buckets[i].TransactionCount++
	}

	sort.SliceStable(buckets, func(a, b int) bool {
		return buckets[a].Total.GreaterThan(buckets[b].Total)
	})

	return buckets
}

// DailySeries returns the expense total for every calendar day of the
// period, in order, with zero entries for days without activity. The series
// never skips a day.
func DailySeries(transactions []*entity.Transaction, period valueobject.Period) []DayTotal {
	series := make([]DayTotal, period.Days())
	for i := range series {
		series[i] = DayTotal{
			Date:  period.Start.AddDate(0, 0, i),
			Total: decimal.Zero,
		}
	}

	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense || !period.Contains(tx.Date) {
			continue
		}
		day := time.Date(tx.Date.Year(), tx.Date.Month(), tx.Date.Day(), 0, 0, 0, 0, time.UTC)
		i := int(day.Sub(period.Start).Hours() / 24)
		series[i].Total = series[i].Total.Add(tx.Amount)
	}

	return series
}

// ValidateForAggregation re-asserts, for every transaction in the batch,
// that its type does not contradict its references. Nil references are
// tolerated here: deleting a source or category legitimately nulls them,
// and such transactions land in the Unassigned bucket.
func ValidateForAggregation(transactions []*entity.Transaction) error {
	for _, tx := range transactions {
		if tx.Type == entity.TransactionTypeIncome && tx.CategoryID != nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeIncomeWithCategory,
				"income transactions cannot have an expense category",
				domainerror.ErrIncomeWithCategory,
			)
		}
		if tx.Type == entity.TransactionTypeExpense && tx.SourceID != nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeExpenseWithSource,
				"expense transactions cannot have an income source",
				domainerror.ErrExpenseWithSource,
			)
		}
	}
	return nil
}

// ValidateClassification re-asserts the exactly-one-of invariant between a
// transaction's type and its source/category references. This is the single
// validation routine used on every transaction mutation.
func ValidateClassification(tx *entity.Transaction) error {
	switch tx.Type {
	case entity.TransactionTypeIncome:
		if tx.CategoryID != nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeIncomeWithCategory,
				"income transactions cannot have an expense category",
				domainerror.ErrIncomeWithCategory,
			)
		}
		if tx.SourceID == nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeIncomeWithoutSource,
				"income transactions must have an income source",
				domainerror.ErrIncomeWithoutSource,
			)
		}
	case entity.TransactionTypeExpense:
		if tx.SourceID != nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeExpenseWithSource,
				"expense transactions cannot have an income source",
				domainerror.ErrExpenseWithSource,
			)
		}
		if tx.CategoryID == nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeExpenseWithoutCategory,
				"expense transactions must have an expense category",
				domainerror.ErrExpenseWithoutCategory,
			)
		}
	default:
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	return nil
}
