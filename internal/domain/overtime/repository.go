package overtime

import (
	"context"
	"time"
)

// OvertimeRepository defines data access for overtime requests.
type OvertimeRepository interface {
	Create(ctx context.Context, req Request) (Request, error)

	// GetPending retrieves a request by ID only while it is still pending.
	GetPending(ctx context.Context, id string) (Request, error)

	// ListByUser retrieves a user's requests, newest first. An empty status
	// means all statuses.
	ListByUser(ctx context.Context, username string, status Status) ([]Request, error)

	// ListPendingForApprover retrieves pending requests addressed to an
	// approver, oldest first.
	ListPendingForApprover(ctx context.Context, approver string) ([]Request, error)

	// ListApprovedRange retrieves approved requests for a user in an
	// inclusive date range.
	ListApprovedRange(ctx context.Context, username string, start, end time.Time) ([]Request, error)

	// HasPending reports whether the user already has a pending request for
	// the date.
	HasPending(ctx context.Context, username string, date time.Time) (bool, error)

	// HasApproved reports whether an approved request exists for the exact
	// date.
	HasApproved(ctx context.Context, username string, date time.Time) (bool, error)

	// Decide moves a pending request to approved or rejected.
	Decide(ctx context.Context, id string, status Status, decidedBy string, notes string) error
}
