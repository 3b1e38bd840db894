package holiday

import (
	"context"
	"time"
)

// HolidayRepository is the calendar lookup the hours engine depends on.
type HolidayRepository interface {
	// IsHoliday reports whether a date is an active designated holiday.
	IsHoliday(ctx context.Context, date time.Time) (bool, error)

	// ListRange retrieves active holidays in an inclusive date range,
	// ordered by date.
	ListRange(ctx context.Context, start, end time.Time) ([]Holiday, error)

	// Create registers a new holiday.
	Create(ctx context.Context, h Holiday) (Holiday, error)
}
