package certificate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/certificate"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
)

type CertificateServiceImpl struct {
	certificateRepo certificate.CertificateRepository
	logger          *slog.Logger
}

func NewCertificateService(certificateRepo certificate.CertificateRepository, logger *slog.Logger) certificate.CertificateService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CertificateServiceImpl{
		certificateRepo: certificateRepo,
		logger:          logger,
	}
}

// File implements certificate.CertificateService.
func (s *CertificateServiceImpl) File(ctx context.Context, req certificate.FileRequest) (certificate.Certificate, error) {
	if err := req.Validate(); err != nil {
		return certificate.Certificate{}, err
	}

	date, err := clock.ParseDate(req.Date)
	if err != nil {
		return certificate.Certificate{}, fmt.Errorf("invalid date: %w", err)
	}

	start, _ := clock.ParseTimeOfDay(req.Start)
	end, _ := clock.ParseTimeOfDay(req.End)
	minutes := end.Minutes() - start.Minutes()
	if minutes <= 0 {
		minutes += 24 * 60
	}

	var reason *string
	if req.Reason != "" {
		reason = &req.Reason
	}

	created, err := s.certificateRepo.Create(ctx, certificate.Certificate{
		Username:   req.Username,
		Date:       date,
		Start:      req.Start,
		End:        req.End,
		TotalHours: float64(minutes) / 60.0,
		Reason:     reason,
		Status:     certificate.StatusPending,
	})
	if err != nil {
		return certificate.Certificate{}, fmt.Errorf("failed to create certificate: %w", err)
	}

	s.logger.Info("certificate filed",
		"username", req.Username, "date", req.Date, "hours", created.TotalHours)
	return created, nil
}

// Approve implements certificate.CertificateService.
func (s *CertificateServiceImpl) Approve(ctx context.Context, id string, decidedBy string) error {
	return s.certificateRepo.Decide(ctx, id, certificate.StatusApproved, decidedBy)
}

// Reject implements certificate.CertificateService.
func (s *CertificateServiceImpl) Reject(ctx context.Context, id string, decidedBy string) error {
	return s.certificateRepo.Decide(ctx, id, certificate.StatusRejected, decidedBy)
}

// ListApproved implements certificate.CertificateService.
func (s *CertificateServiceImpl) ListApproved(ctx context.Context, username string, start, end time.Time) ([]certificate.Certificate, error) {
	return s.certificateRepo.ListApprovedRange(ctx, username, start, end)
}
