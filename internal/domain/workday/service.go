package workday

import (
	"context"
	"time"
)

// WorkdayService computes worked hours from raw punches. All operations are
// pure reads; a malformed punch row is skipped and logged, never fatal.
type WorkdayService interface {
	// CalculateDay computes one day. Days with fewer than two parseable
	// punches yield a zero-valued result with the punch count filled in.
	CalculateDay(ctx context.Context, username string, date time.Time) (DailyResult, error)

	// CalculatePeriod walks every day of the inclusive range.
	CalculatePeriod(ctx context.Context, username string, start, end time.Time) (PeriodSummary, error)
}
