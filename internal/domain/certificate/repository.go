package certificate

import (
	"context"
	"time"
)

// CertificateRepository defines data access for hour certificates.
type CertificateRepository interface {
	Create(ctx context.Context, c Certificate) (Certificate, error)

	// SumApprovedHoursByDay totals approved certificate hours for a user on
	// one calendar date. The daily calculator subtracts this from final
	// hours.
	SumApprovedHoursByDay(ctx context.Context, username string, date time.Time) (float64, error)

	// ListApprovedRange retrieves approved certificates for a user in an
	// inclusive date range, ordered by date.
	ListApprovedRange(ctx context.Context, username string, start, end time.Time) ([]Certificate, error)

	// Decide moves a pending certificate to approved or rejected.
	Decide(ctx context.Context, id string, status Status, decidedBy string) error
}
