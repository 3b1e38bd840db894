package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access for clock events. Timestamps are
// stored as naive local wall-clock text; implementations parse on read and
// must return unparseable rows with a zero Timestamp rather than dropping
// them, so callers can count and log them.
type PunchRepository interface {
	// Create persists a new punch. Punches are immutable once written.
	Create(ctx context.Context, p Punch) (Punch, error)

	// ListDay retrieves a user's punches for one calendar date, ordered by
	// timestamp ascending.
	ListDay(ctx context.Context, username string, date time.Time) ([]Punch, error)

	// ListRange retrieves a user's punches for an inclusive date range,
	// ordered by timestamp ascending.
	ListRange(ctx context.Context, username string, start, end time.Time) ([]Punch, error)

	// CountKindsByDay returns how many punches of each kind exist for a
	// user on one calendar date.
	CountKindsByDay(ctx context.Context, username string, date time.Time) (map[Kind]int, error)
}
