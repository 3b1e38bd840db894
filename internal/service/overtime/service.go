package overtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/overtime"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/punch"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/schedule"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
)

type OvertimeServiceImpl struct {
	overtimeRepo    overtime.OvertimeRepository
	punchRepo       punch.PunchRepository
	scheduleService schedule.ScheduleService
	logger          *slog.Logger
}

func NewOvertimeService(
	overtimeRepo overtime.OvertimeRepository,
	punchRepo punch.PunchRepository,
	scheduleService schedule.ScheduleService,
	logger *slog.Logger,
) overtime.OvertimeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OvertimeServiceImpl{
		overtimeRepo:    overtimeRepo,
		punchRepo:       punchRepo,
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// Detect implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Detect(ctx context.Context, username string, date time.Time, toleranceMinutes int) (overtime.Detection, error) {
	if toleranceMinutes <= 0 {
		toleranceMinutes = overtime.DefaultToleranceMinutes
	}

	expected, err := s.scheduleService.ExpectedDay(ctx, username, date)
	if err != nil {
		return overtime.Detection{}, err
	}

	if !expected.Works {
		return overtime.Detection{Category: overtime.CategoryNoSchedule}, nil
	}

	punches, err := s.punchRepo.ListDay(ctx, username, date)
	if err != nil {
		return overtime.Detection{}, fmt.Errorf("failed to list punches: %w", err)
	}

	registered := s.registeredMinutes(username, punches, expected.LunchMinutes)

	detection := overtime.Detection{
		ExpectedMinutes:   expected.Minutes,
		RegisteredMinutes: registered,
	}

	if len(punches) == 0 {
		detection.Category = overtime.CategoryNoPunch
		return detection, nil
	}

	diff := registered - expected.Minutes
	switch {
	case diff > toleranceMinutes:
		detection.HasOvertime = true
		detection.OvertimeMinutes = diff
		detection.OvertimeHours = float64(diff) / 60.0
		detection.Category = overtime.CategoryOvertime
	case diff < -toleranceMinutes:
		detection.Category = overtime.CategoryUnderSchedule
	default:
		detection.Category = overtime.CategoryOnSchedule
	}

	return detection, nil
}

// registeredMinutes measures the span from the earliest start punch to the
// latest end punch, minus the schedule's lunch break. A day missing either
// bound registers zero minutes.
func (s *OvertimeServiceImpl) registeredMinutes(username string, punches []punch.Punch, lunchMinutes int) int {
	var start, end time.Time
	for _, p := range punches {
		if !p.Valid() {
			s.logger.Warn("skipping punch with unparseable timestamp",
				"username", username, "punch_id", p.ID, "raw", p.Raw)
			continue
		}
		switch p.Kind {
		case punch.KindStart:
			if start.IsZero() || p.Timestamp.Before(start) {
				start = p.Timestamp
			}
		case punch.KindEnd:
			if end.IsZero() || p.Timestamp.After(end) {
				end = p.Timestamp
			}
		}
	}
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	registered := int(end.Sub(start).Minutes()) - lunchMinutes
	if registered < 0 {
		return 0
	}
	return registered
}

// Submit implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Submit(ctx context.Context, req overtime.SubmitRequest) (overtime.SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.SubmitResponse{}, err
	}

	date, err := clock.ParseDate(req.Date)
	if err != nil {
		return overtime.SubmitResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	pending, err := s.overtimeRepo.HasPending(ctx, req.Username, date)
	if err != nil {
		return overtime.SubmitResponse{}, fmt.Errorf("failed to check pending requests: %w", err)
	}
	if pending {
		return overtime.SubmitResponse{}, overtime.ErrDuplicatePending
	}

	created, err := s.overtimeRepo.Create(ctx, overtime.Request{
		Username:      req.Username,
		Date:          date,
		Start:         req.Start,
		End:           req.End,
		Justification: req.Justification,
		Approver:      req.Approver,
		Status:        overtime.StatusPending,
		RequestedAt:   time.Now(),
	})
	if err != nil {
		return overtime.SubmitResponse{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return overtime.SubmitResponse{
		Request:    overtime.NewRequestResponse(created),
		TotalHours: WindowHours(req.Start, req.End),
	}, nil
}

// WindowHours measures an approved window. An end at or before the start
// rolls to the next day.
func WindowHours(start, end string) float64 {
	st, err := clock.ParseTimeOfDay(start)
	if err != nil {
		return 0
	}
	en, err := clock.ParseTimeOfDay(end)
	if err != nil {
		return 0
	}
	minutes := en.Minutes() - st.Minutes()
	if minutes <= 0 {
		minutes += 24 * 60
	}
	return float64(minutes) / 60.0
}

// ListMine implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListMine(ctx context.Context, username string, status overtime.Status) ([]overtime.Request, error) {
	return s.overtimeRepo.ListByUser(ctx, username, status)
}

// ListPendingForApprover implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListPendingForApprover(ctx context.Context, approver string) ([]overtime.Request, error) {
	return s.overtimeRepo.ListPendingForApprover(ctx, approver)
}

// Approve implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Approve(ctx context.Context, req overtime.DecideRequest) error {
	return s.decide(ctx, req, overtime.StatusApproved)
}

// Reject implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Reject(ctx context.Context, req overtime.DecideRequest) error {
	return s.decide(ctx, req, overtime.StatusRejected)
}

func (s *OvertimeServiceImpl) decide(ctx context.Context, req overtime.DecideRequest, status overtime.Status) error {
	if err := req.Validate(); err != nil {
		return err
	}

	pending, err := s.overtimeRepo.GetPending(ctx, req.ID)
	if err != nil {
		return err
	}

	if pending.Approver != req.Approver {
		return overtime.ErrWrongApprover
	}

	if err := s.overtimeRepo.Decide(ctx, req.ID, status, req.Approver, req.Notes); err != nil {
		return fmt.Errorf("failed to decide overtime request: %w", err)
	}

	s.logger.Info("overtime request decided",
		"request_id", req.ID, "status", string(status), "decided_by", req.Approver)
	return nil
}
