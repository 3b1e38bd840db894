package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/holiday"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
	logger      *slog.Logger
}

func NewHolidayService(holidayRepo holiday.HolidayRepository, logger *slog.Logger) holiday.HolidayService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HolidayServiceImpl{
		holidayRepo: holidayRepo,
		logger:      logger,
	}
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	date, err := clock.ParseDate(req.Date)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("invalid date: %w", err)
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Date: date,
		Name: req.Name,
		Kind: req.Kind,
	})
	if err != nil {
		return holiday.Holiday{}, err
	}

	s.logger.Info("holiday registered", "date", req.Date, "name", req.Name)
	return created, nil
}

// ListRange implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	return s.holidayRepo.ListRange(ctx, start, end)
}

// IsHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	return s.holidayRepo.IsHoliday(ctx, date)
}
