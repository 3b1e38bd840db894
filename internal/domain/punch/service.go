package punch

import (
	"context"
	"time"
)

// PunchService registers clock events and lists them for display.
type PunchService interface {
	// Register validates per-day uniqueness of start/end punches and the
	// user's weekly schedule before persisting the event.
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	// ListDay returns the user's punches for one calendar date.
	ListDay(ctx context.Context, username string, date time.Time) ([]Punch, error)
}
