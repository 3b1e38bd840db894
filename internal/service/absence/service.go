package absence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/absence"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
)

type AbsenceServiceImpl struct {
	absenceRepo absence.AbsenceRepository
	logger      *slog.Logger
}

func NewAbsenceService(absenceRepo absence.AbsenceRepository, logger *slog.Logger) absence.AbsenceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AbsenceServiceImpl{
		absenceRepo: absenceRepo,
		logger:      logger,
	}
}

// File implements absence.AbsenceService.
func (s *AbsenceServiceImpl) File(ctx context.Context, req absence.FileRequest) (absence.Absence, error) {
	if err := req.Validate(); err != nil {
		return absence.Absence{}, err
	}

	start, err := clock.ParseDate(req.StartDate)
	if err != nil {
		return absence.Absence{}, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := clock.ParseDate(req.EndDate)
	if err != nil {
		return absence.Absence{}, fmt.Errorf("invalid end_date: %w", err)
	}

	var reason *string
	if req.Reason != "" {
		reason = &req.Reason
	}

	created, err := s.absenceRepo.Create(ctx, absence.Absence{
		Username:   req.Username,
		StartDate:  start,
		EndDate:    end,
		Kind:       req.Kind,
		Reason:     reason,
		NoDocument: req.NoDocument,
		Status:     "registered",
	})
	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to create absence: %w", err)
	}

	s.logger.Info("absence filed",
		"username", req.Username, "start", req.StartDate, "end", req.EndDate,
		"no_document", req.NoDocument)
	return created, nil
}

// ListUndocumented implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListUndocumented(ctx context.Context, username string, start, end time.Time) ([]absence.Absence, error) {
	return s.absenceRepo.ListUndocumentedOverlapping(ctx, username, start, end)
}
