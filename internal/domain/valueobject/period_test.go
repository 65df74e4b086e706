package valueobject

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriod_Weekly(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "wednesday resolves to preceding monday",
			reference: date(2024, time.November, 13), // Wednesday
			wantStart: date(2024, time.November, 11),
			wantEnd:   date(2024, time.November, 17),
		},
		{
			name:      "monday resolves to itself",
			reference: date(2024, time.November, 11),
			wantStart: date(2024, time.November, 11),
			wantEnd:   date(2024, time.November, 17),
		},
		{
			name:      "sunday belongs to the preceding monday's week",
			reference: date(2024, time.November, 17),
			wantStart: date(2024, time.November, 11),
			wantEnd:   date(2024, time.November, 17),
		},
		{
			name:      "week spanning a month boundary",
			reference: date(2024, time.October, 31), // Thursday
			wantStart: date(2024, time.October, 28),
			wantEnd:   date(2024, time.November, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePeriod(PeriodWeekly, tt.reference)
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", got.End, tt.wantEnd)
			}
		})
	}
}

func TestResolvePeriod_Monthly(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "leap february",
			reference: date(2024, time.February, 10),
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.February, 29),
		},
		{
			name:      "non-leap february",
			reference: date(2023, time.February, 10),
			wantStart: date(2023, time.February, 1),
			wantEnd:   date(2023, time.February, 28),
		},
		{
			name:      "december does not spill into january",
			reference: date(2024, time.December, 10),
			wantStart: date(2024, time.December, 1),
			wantEnd:   date(2024, time.December, 31),
		},
		{
			name:      "thirty day month",
			reference: date(2024, time.April, 30),
			wantStart: date(2024, time.April, 1),
			wantEnd:   date(2024, time.April, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePeriod(PeriodMonthly, tt.reference)
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", got.End, tt.wantEnd)
			}
		})
	}
}

func TestResolvePeriod_Yearly(t *testing.T) {
	got := ResolvePeriod(PeriodYearly, date(2024, time.June, 15))

	if !got.Start.Equal(date(2024, time.January, 1)) {
		t.Errorf("start = %v, want 2024-01-01", got.Start)
	}
	if !got.End.Equal(date(2024, time.December, 31)) {
		t.Errorf("end = %v, want 2024-12-31", got.End)
	}
}

func TestNewCustomPeriod(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		p, err := NewCustomPeriod(date(2024, time.March, 1), date(2024, time.March, 15))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Days() != 15 {
			t.Errorf("days = %d, want 15", p.Days())
		}
	})

	t.Run("single day range is valid", func(t *testing.T) {
		p, err := NewCustomPeriod(date(2024, time.March, 1), date(2024, time.March, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Days() != 1 {
			t.Errorf("days = %d, want 1", p.Days())
		}
	})

	t.Run("end before start fails", func(t *testing.T) {
		_, err := NewCustomPeriod(date(2024, time.March, 15), date(2024, time.March, 1))
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("missing start fails", func(t *testing.T) {
		_, err := NewCustomPeriod(time.Time{}, date(2024, time.March, 1))
		if !errors.Is(err, domainerror.ErrMissingStartDate) {
			t.Errorf("expected ErrMissingStartDate, got %v", err)
		}
	})

	t.Run("missing end fails", func(t *testing.T) {
		_, err := NewCustomPeriod(date(2024, time.March, 1), time.Time{})
		if !errors.Is(err, domainerror.ErrMissingEndDate) {
			t.Errorf("expected ErrMissingEndDate, got %v", err)
		}
	})
}

func TestMonthPeriod(t *testing.T) {
	p := MonthPeriod(2024, time.February)
	if !p.End.Equal(date(2024, time.February, 29)) {
		t.Errorf("end = %v, want 2024-02-29", p.End)
	}
	if p.Days() != 29 {
		t.Errorf("days = %d, want 29", p.Days())
	}
}

func TestPeriod_Contains(t *testing.T) {
	p := Period{Start: date(2024, time.May, 1), End: date(2024, time.May, 31)}

	if !p.Contains(date(2024, time.May, 1)) {
		t.Error("start bound should be inclusive")
	}
	if !p.Contains(date(2024, time.May, 31)) {
		t.Error("end bound should be inclusive")
	}
	if p.Contains(date(2024, time.April, 30)) {
		t.Error("day before start should be excluded")
	}
	if p.Contains(date(2024, time.June, 1)) {
		t.Error("day after end should be excluded")
	}
	if !p.Contains(time.Date(2024, time.May, 31, 23, 59, 0, 0, time.UTC)) {
		t.Error("time of day must not be significant")
	}
}
