package punch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/punch"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/schedule"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
)

// toleranceMinutes is the band around the scheduled time within which a
// punch is categorized as on time.
const toleranceMinutes = 5

type PunchServiceImpl struct {
	punchRepo       punch.PunchRepository
	scheduleService schedule.ScheduleService
	logger          *slog.Logger
}

func NewPunchService(punchRepo punch.PunchRepository, scheduleService schedule.ScheduleService, logger *slog.Logger) punch.PunchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PunchServiceImpl{
		punchRepo:       punchRepo,
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// Register implements punch.PunchService.
func (s *PunchServiceImpl) Register(ctx context.Context, req punch.RegisterRequest) (punch.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.RegisterResponse{}, err
	}

	ts := time.Now()
	if req.Timestamp != "" {
		parsed, err := clock.ParseStamp(req.Timestamp)
		if err != nil {
			return punch.RegisterResponse{}, fmt.Errorf("invalid timestamp: %w", err)
		}
		ts = parsed
	}

	kind := punch.Kind(req.Kind)

	counts, err := s.punchRepo.CountKindsByDay(ctx, req.Username, ts)
	if err != nil {
		return punch.RegisterResponse{}, fmt.Errorf("failed to count punches: %w", err)
	}
	switch kind {
	case punch.KindStart:
		if counts[punch.KindStart] > 0 {
			return punch.RegisterResponse{}, punch.ErrDuplicateStart
		}
	case punch.KindEnd:
		if counts[punch.KindEnd] > 0 {
			return punch.RegisterResponse{}, punch.ErrDuplicateEnd
		}
	}

	day, err := s.scheduleService.ResolveDay(ctx, req.Username, ts)
	if err != nil {
		return punch.RegisterResponse{}, err
	}
	if !day.Works {
		return punch.RegisterResponse{}, schedule.ErrNotWorkingDay
	}

	warning, category := classify(kind, ts, day)

	created, err := s.punchRepo.Create(ctx, punch.Punch{
		Username:  req.Username,
		Kind:      kind,
		Timestamp: ts,
		Raw:       ts.Format("2006-01-02 15:04:05"),
		CreatedAt: time.Now(),
	})
	if err != nil {
		return punch.RegisterResponse{}, fmt.Errorf("failed to create punch: %w", err)
	}

	s.logger.Info("punch registered",
		"username", req.Username, "kind", string(kind), "category", category)

	return punch.RegisterResponse{
		Punch:    punch.NewPunchResponse(created),
		Warning:  warning,
		Category: category,
	}, nil
}

// classify compares the punch against the day's scheduled window. The
// result is advisory, registration proceeds either way.
func classify(kind punch.Kind, ts time.Time, day schedule.DaySchedule) (warning, category string) {
	if kind == punch.KindIntermediate {
		return "", "on_time"
	}

	scheduled := day.Start
	if kind == punch.KindEnd {
		scheduled = day.End
	}

	diff := ts.Hour()*60 + ts.Minute() - scheduled.Minutes()
	switch {
	case diff < -toleranceMinutes:
		if kind == punch.KindStart {
			return fmt.Sprintf("starting %d minutes before schedule", -diff), "early"
		}
		return fmt.Sprintf("leaving %d minutes before schedule", -diff), "early"
	case diff > toleranceMinutes:
		if kind == punch.KindStart {
			return fmt.Sprintf("starting %d minutes after schedule", diff), "late"
		}
		return fmt.Sprintf("leaving %d minutes after schedule", diff), "late"
	default:
		return "", "on_time"
	}
}

// ListDay implements punch.PunchService.
func (s *PunchServiceImpl) ListDay(ctx context.Context, username string, date time.Time) ([]punch.Punch, error) {
	return s.punchRepo.ListDay(ctx, username, date)
}
