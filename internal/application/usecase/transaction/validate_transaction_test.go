package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

type fakeSourceRepo struct {
	sources map[uuid.UUID]*entity.IncomeSource
}

func (f *fakeSourceRepo) Create(ctx context.Context, source *entity.IncomeSource) error {
	f.sources[source.ID] = source
	return nil
}

func (f *fakeSourceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeSource, error) {
	source, ok := f.sources[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return source, nil
}

func (f *fakeSourceRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.IncomeSource, error) {
	var result []*entity.IncomeSource
	for _, s := range f.sources {
		if s.UserID == userID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeSourceRepo) ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	for _, s := range f.sources {
		if s.UserID == userID && s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSourceRepo) Update(ctx context.Context, source *entity.IncomeSource) error {
	f.sources[source.ID] = source
	return nil
}

func (f *fakeSourceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.sources, id)
	return nil
}

func txnErrCode(t *testing.T, err error) domainerror.TransactionErrorCode {
	t.Helper()
	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) {
		t.Fatalf("error = %v, want *TransactionError", err)
	}
	return txnErr.Code
}

func TestValidateCommonFields(t *testing.T) {
	t.Run("accepts a regular transaction", func(t *testing.T) {
		if err := validateCommonFields("Groceries at the market", decimal.RequireFromString("85.50")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("accepts a zero amount", func(t *testing.T) {
		if err := validateCommonFields("Free sample", decimal.Zero); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects an empty description", func(t *testing.T) {
		err := validateCommonFields("", decimal.RequireFromString("10.00"))
		if code := txnErrCode(t, err); code != domainerror.ErrCodeMissingTransactionFields {
			t.Errorf("code = %s, want %s", code, domainerror.ErrCodeMissingTransactionFields)
		}
	})

	t.Run("rejects a description over the limit", func(t *testing.T) {
		err := validateCommonFields(strings.Repeat("x", maxDescriptionLength+1), decimal.RequireFromString("10.00"))
		if code := txnErrCode(t, err); code != domainerror.ErrCodeDescriptionTooLong {
			t.Errorf("code = %s, want %s", code, domainerror.ErrCodeDescriptionTooLong)
		}
	})

	t.Run("accepts a description at the limit", func(t *testing.T) {
		if err := validateCommonFields(strings.Repeat("x", maxDescriptionLength), decimal.RequireFromString("10.00")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		err := validateCommonFields("Refund gone wrong", decimal.RequireFromString("-5.00"))
		if code := txnErrCode(t, err); code != domainerror.ErrCodeInvalidTransactionAmount {
			t.Errorf("code = %s, want %s", code, domainerror.ErrCodeInvalidTransactionAmount)
		}
	})
}

func TestValidateSourceRef(t *testing.T) {
	repo := &fakeSourceRepo{sources: make(map[uuid.UUID]*entity.IncomeSource)}
	owner := uuid.New()
	source := entity.NewIncomeSource(owner, "Salary", "")
	repo.sources[source.ID] = source

	t.Run("nil reference passes", func(t *testing.T) {
		if err := validateSourceRef(context.Background(), repo, owner, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("owned source passes", func(t *testing.T) {
		if err := validateSourceRef(context.Background(), repo, owner, &source.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown source is rejected", func(t *testing.T) {
		missing := uuid.New()
		err := validateSourceRef(context.Background(), repo, owner, &missing)
		if code := txnErrCode(t, err); code != domainerror.ErrCodeTxnSourceNotFound {
			t.Errorf("code = %s, want %s", code, domainerror.ErrCodeTxnSourceNotFound)
		}
	})

	t.Run("another user's source is rejected", func(t *testing.T) {
		err := validateSourceRef(context.Background(), repo, uuid.New(), &source.ID)
		if code := txnErrCode(t, err); code != domainerror.ErrCodeTxnSourceNotOwned {
			t.Errorf("code = %s, want %s", code, domainerror.ErrCodeTxnSourceNotOwned)
		}
	})
}
