package schedule

import (
	"context"
	"time"
)

// ScheduleService resolves the expected working window for any user and
// date. Resolution fails open: unknown users and missing or unparseable
// rows get the global default week, never an error, so reporting paths
// always have a schedule to compare against.
type ScheduleService interface {
	// GetWeek returns the user's full week, defaults overlaid.
	GetWeek(ctx context.Context, username string) (Week, error)

	// ResolveDay returns the schedule for the weekday of a calendar date.
	ResolveDay(ctx context.Context, username string, date time.Time) (DaySchedule, error)

	// ExpectedDay computes expected worked minutes for the date's weekday.
	ExpectedDay(ctx context.Context, username string, date time.Time) (ExpectedDay, error)

	// SaveWeek persists an explicit schedule configuration.
	SaveWeek(ctx context.Context, req UpdateWeekRequest) (WeekResponse, error)
}
