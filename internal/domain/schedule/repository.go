package schedule

import (
	"context"
)

// ScheduleRepository defines data access for per-weekday schedule rows.
type ScheduleRepository interface {
	// ListWeek retrieves whatever per-weekday rows exist for a user. An
	// empty slice is not an error: the resolver falls back to the default
	// week.
	ListWeek(ctx context.Context, username string) ([]WeekdayRow, error)

	// SaveDay upserts one weekday row for a user.
	SaveDay(ctx context.Context, row WeekdayRow) error
}
