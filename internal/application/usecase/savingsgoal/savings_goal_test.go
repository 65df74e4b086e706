package savingsgoal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

type fakeSavingsGoalRepo struct {
	goals map[uuid.UUID]*entity.SavingsGoal
}

func newFakeSavingsGoalRepo() *fakeSavingsGoalRepo {
	return &fakeSavingsGoalRepo{goals: make(map[uuid.UUID]*entity.SavingsGoal)}
}

func (f *fakeSavingsGoalRepo) Create(ctx context.Context, goal *entity.SavingsGoal) error {
	f.goals[goal.ID] = goal
	return nil
}

func (f *fakeSavingsGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error) {
	goal, ok := f.goals[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return goal, nil
}

func (f *fakeSavingsGoalRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error) {
	var result []*entity.SavingsGoal
	for _, goal := range f.goals {
		if goal.UserID == userID {
			result = append(result, goal)
		}
	}
	return result, nil
}

func (f *fakeSavingsGoalRepo) Update(ctx context.Context, goal *entity.SavingsGoal) error {
	f.goals[goal.ID] = goal
	return nil
}

func (f *fakeSavingsGoalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.goals, id)
	return nil
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateSavingsGoal(t *testing.T) {
	repo := newFakeSavingsGoalRepo()
	uc := NewCreateSavingsGoalUseCase(repo)
	userID := uuid.New()

	t.Run("creates with zero saved amount", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), CreateSavingsGoalInput{
			UserID:       userID,
			Name:         "Emergency Fund",
			TargetAmount: money("1000.00"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Goal.CurrentAmount.IsZero() {
			t.Errorf("current amount = %s, want 0", output.Goal.CurrentAmount)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateSavingsGoalInput{
			UserID:       userID,
			TargetAmount: money("1000.00"),
		})
		if !errors.Is(err, domainerror.ErrSavingsGoalNameRequired) {
			t.Errorf("error = %v, want ErrSavingsGoalNameRequired", err)
		}
	})

	t.Run("rejects non-positive target", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateSavingsGoalInput{
			UserID:       userID,
			Name:         "Vacation",
			TargetAmount: decimal.Zero,
		})
		if !errors.Is(err, domainerror.ErrInvalidTargetAmount) {
			t.Errorf("error = %v, want ErrInvalidTargetAmount", err)
		}
	})
}

func TestContributeSavingsGoal(t *testing.T) {
	repo := newFakeSavingsGoalRepo()
	userID := uuid.New()
	goal := entity.NewSavingsGoal(userID, "Emergency Fund", money("1000.00"), nil)
	repo.goals[goal.ID] = goal

	uc := NewContributeSavingsGoalUseCase(repo)

	t.Run("contribution advances progress", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ContributeSavingsGoalInput{
			UserID: userID,
			GoalID: goal.ID,
			Amount: money("250.00"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Goal.CurrentAmount.Equal(money("250.00")) {
			t.Errorf("current amount = %s, want 250.00", output.Goal.CurrentAmount)
		}
		if output.ProgressPercentage != 25.0 {
			t.Errorf("progress = %v, want 25.0", output.ProgressPercentage)
		}
	})

	t.Run("withdrawal below zero is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ContributeSavingsGoalInput{
			UserID: userID,
			GoalID: goal.ID,
			Amount: money("-300.00"),
		})
		if !errors.Is(err, domainerror.ErrNegativeCurrentAmount) {
			t.Errorf("error = %v, want ErrNegativeCurrentAmount", err)
		}
	})

	t.Run("other users cannot contribute", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ContributeSavingsGoalInput{
			UserID: uuid.New(),
			GoalID: goal.ID,
			Amount: money("10.00"),
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedSavingsGoalAccess) {
			t.Errorf("error = %v, want ErrUnauthorizedSavingsGoalAccess", err)
		}
	})
}

func TestListSavingsGoals_DaysRemaining(t *testing.T) {
	repo := newFakeSavingsGoalRepo()
	userID := uuid.New()

	targetDate := date(2024, time.December, 25)
	withDate := entity.NewSavingsGoal(userID, "Holiday", money("1000.00"), &targetDate)
	withDate.CurrentAmount = money("250.00")
	withoutDate := entity.NewSavingsGoal(userID, "Open Ended", money("500.00"), nil)
	repo.goals[withDate.ID] = withDate
	repo.goals[withoutDate.ID] = withoutDate

	uc := NewListSavingsGoalsUseCase(repo)

	output, err := uc.Execute(context.Background(), ListSavingsGoalsInput{
		UserID:        userID,
		ReferenceDate: date(2024, time.December, 15),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Goals) != 2 {
		t.Fatalf("goals = %d, want 2", len(output.Goals))
	}

	for _, g := range output.Goals {
		switch g.Goal.ID {
		case withDate.ID:
			if g.ProgressPercentage != 25.0 {
				t.Errorf("progress = %v, want 25.0", g.ProgressPercentage)
			}
			if g.DaysRemaining == nil || *g.DaysRemaining != 10 {
				t.Errorf("days remaining = %v, want 10", g.DaysRemaining)
			}
		case withoutDate.ID:
			if g.DaysRemaining != nil {
				t.Errorf("days remaining = %v, want nil without a target date", g.DaysRemaining)
			}
		}
	}
}

func TestSavingsGoal_PastTargetDateClampsToZero(t *testing.T) {
	targetDate := date(2024, time.January, 1)
	goal := entity.NewSavingsGoal(uuid.New(), "Old Goal", money("100.00"), &targetDate)

	days := goal.DaysRemaining(date(2024, time.June, 1))
	if days == nil || *days != 0 {
		t.Errorf("days remaining = %v, want 0 for a past target date", days)
	}
}
