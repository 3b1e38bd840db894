package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/schedule"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
	logger *slog.Logger
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository, logger *slog.Logger) schedule.ScheduleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleServiceImpl{
		ScheduleRepository: scheduleRepo,
		logger:             logger,
	}
}

// WeekdayFromISO maps 1=Monday..7=Sunday onto time.Weekday.
func WeekdayFromISO(iso int) time.Weekday {
	return time.Weekday(iso % 7)
}

// ISOFromWeekday is the inverse of WeekdayFromISO.
func ISOFromWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// GetWeek implements schedule.ScheduleService. Users without stored rows,
// and rows whose times do not parse, resolve to the global default week.
func (s *ScheduleServiceImpl) GetWeek(ctx context.Context, username string) (schedule.Week, error) {
	week := schedule.DefaultWeek()

	rows, err := s.ScheduleRepository.ListWeek(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly schedule: %w", err)
	}

	for _, row := range rows {
		day, ok := week[row.Weekday]
		if !ok {
			continue
		}
		day.Works = row.Works
		if t, perr := clock.ParseTimeOfDay(row.Start); perr == nil {
			day.Start = t
		} else {
			s.logger.Warn("unparseable schedule start, using default",
				"username", username, "weekday", row.Weekday.String(), "value", row.Start)
		}
		if t, perr := clock.ParseTimeOfDay(row.End); perr == nil {
			day.End = t
		} else {
			s.logger.Warn("unparseable schedule end, using default",
				"username", username, "weekday", row.Weekday.String(), "value", row.End)
		}
		if row.LunchMinutes >= 0 {
			day.LunchMinutes = row.LunchMinutes
		}
		week[row.Weekday] = day
	}

	return week, nil
}

// ResolveDay implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ResolveDay(ctx context.Context, username string, date time.Time) (schedule.DaySchedule, error) {
	week, err := s.GetWeek(ctx, username)
	if err != nil {
		return schedule.DaySchedule{}, err
	}
	return week[date.Weekday()], nil
}

// ExpectedDay implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ExpectedDay(ctx context.Context, username string, date time.Time) (schedule.ExpectedDay, error) {
	day, err := s.ResolveDay(ctx, username, date)
	if err != nil {
		return schedule.ExpectedDay{}, err
	}

	if !day.Works {
		return schedule.ExpectedDay{}, nil
	}

	gross := day.End.Minutes() - day.Start.Minutes()
	if gross < 0 {
		// Overnight window, the end falls on the next day.
		gross += 24 * 60
	}

	effective := gross - day.LunchMinutes
	if effective < 0 {
		effective = 0
	}

	return schedule.ExpectedDay{
		Works:        true,
		Minutes:      effective,
		Hours:        float64(effective) / 60.0,
		Start:        day.Start,
		End:          day.End,
		LunchMinutes: day.LunchMinutes,
	}, nil
}

// SaveWeek implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) SaveWeek(ctx context.Context, req schedule.UpdateWeekRequest) (schedule.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeekResponse{}, err
	}

	for _, d := range req.Days {
		row := schedule.WeekdayRow{
			Username:     req.Username,
			Weekday:      WeekdayFromISO(d.Weekday),
			Works:        d.Works,
			Start:        d.Start,
			End:          d.End,
			LunchMinutes: d.LunchMinutes,
		}
		if err := s.ScheduleRepository.SaveDay(ctx, row); err != nil {
			return schedule.WeekResponse{}, fmt.Errorf("failed to save schedule for weekday %d: %w", d.Weekday, err)
		}
	}

	week, err := s.GetWeek(ctx, req.Username)
	if err != nil {
		return schedule.WeekResponse{}, err
	}

	return WeekToResponse(req.Username, week), nil
}

// WeekToResponse maps a resolved week onto the transport shape, Monday
// first.
func WeekToResponse(username string, week schedule.Week) schedule.WeekResponse {
	resp := schedule.WeekResponse{Username: username}
	for iso := 1; iso <= 7; iso++ {
		day := week[WeekdayFromISO(iso)]
		resp.Days = append(resp.Days, schedule.DayResponse{
			Weekday:      iso,
			Works:        day.Works,
			Start:        day.Start.String(),
			End:          day.End.String(),
			LunchMinutes: day.LunchMinutes,
		})
	}
	return resp
}
