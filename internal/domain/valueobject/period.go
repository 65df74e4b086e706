// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"time"

	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// PeriodKind represents the kind of reporting period.
type PeriodKind string

const (
	PeriodWeekly  PeriodKind = "weekly"
	PeriodMonthly PeriodKind = "monthly"
	PeriodYearly  PeriodKind = "yearly"
	PeriodCustom  PeriodKind = "custom"
)

// Period represents an inclusive [Start, End] date window used to bound
// aggregation. Both bounds are normalized to midnight UTC; time-of-day is
// never significant.
type Period struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod computes the period window containing the given reference
// date. Weeks start on Monday. The reference date is always supplied by the
// caller; this package never reads the system clock.
func ResolvePeriod(kind PeriodKind, reference time.Time) Period {
	switch kind {
	case PeriodWeekly:
		start := weekStart(reference)
		return Period{Start: start, End: start.AddDate(0, 0, 6)}

	case PeriodYearly:
		start := time.Date(reference.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return Period{Start: start, End: time.Date(reference.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)}

	case PeriodMonthly:
		fallthrough
	default:
		return MonthPeriod(reference.Year(), reference.Month())
	}
}

// NewCustomPeriod builds an explicit period window. It fails when either
// bound is missing or the end precedes the start.
func NewCustomPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() {
		return Period{}, domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if end.IsZero() {
		return Period{}, domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	start = toDate(start)
	end = toDate(end)
	if end.Before(start) {
		return Period{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return Period{Start: start, End: end}, nil
}

// MonthPeriod returns the calendar-month window for (year, month).
// AddDate handles 28/29/30/31-day months and the December rollover.
func MonthPeriod(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.AddDate(0, 1, -1)}
}

// Contains reports whether the given date falls inside the period,
// comparing calendar days only.
func (p Period) Contains(date time.Time) bool {
	d := toDate(date)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days returns the number of calendar days covered by the period.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// weekStart returns the Monday of the week containing the given date.
func weekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return toDate(date).AddDate(0, 0, -(weekday - 1))
}

// toDate normalizes a timestamp to midnight UTC.
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
