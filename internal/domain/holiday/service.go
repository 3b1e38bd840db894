package holiday

import (
	"context"
	"time"
)

// HolidayService manages the designated-holiday calendar.
type HolidayService interface {
	Create(ctx context.Context, req CreateRequest) (Holiday, error)
	ListRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}
