package certificate

import (
	"context"
	"time"
)

// CertificateService files and decides hour certificates. Total hours are
// derived from the certificate's time window at filing time.
type CertificateService interface {
	File(ctx context.Context, req FileRequest) (Certificate, error)
	Approve(ctx context.Context, id string, decidedBy string) error
	Reject(ctx context.Context, id string, decidedBy string) error
	ListApproved(ctx context.Context, username string, start, end time.Time) ([]Certificate, error)
}
