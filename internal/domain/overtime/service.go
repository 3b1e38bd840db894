package overtime

import (
	"context"
	"time"
)

// DefaultToleranceMinutes is the band around the expected minutes within
// which a day still counts as on schedule.
const DefaultToleranceMinutes = 5

// OvertimeService detects overtime against the weekly schedule and manages
// the request lifecycle.
type OvertimeService interface {
	// Detect classifies one day. Exactly at the tolerance boundary counts
	// as on schedule.
	Detect(ctx context.Context, username string, date time.Time, toleranceMinutes int) (Detection, error)

	// Submit files a new request; at most one pending request per user and
	// date.
	Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error)

	ListMine(ctx context.Context, username string, status Status) ([]Request, error)
	ListPendingForApprover(ctx context.Context, approver string) ([]Request, error)

	// Approve and Reject are restricted to the requested approver.
	Approve(ctx context.Context, req DecideRequest) error
	Reject(ctx context.Context, req DecideRequest) error
}
