package workday

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/certificate"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/holiday"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/punch"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/schedule"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/workday"
)

// Policy carries the tunable daily-hours rules. The lunch deduction is a
// fixed amount applied whenever the raw span exceeds the threshold,
// independent of the user's configured lunch break, unless UseScheduleLunch
// is set.
type Policy struct {
	LunchThresholdHours float64
	LunchDeductionHours float64
	UseScheduleLunch    bool
	SundayHolidayFactor int
}

// DefaultPolicy matches production behavior: one hour deducted past six
// raw hours, double pay on Sundays and holidays.
func DefaultPolicy() Policy {
	return Policy{
		LunchThresholdHours: 6,
		LunchDeductionHours: 1,
		UseScheduleLunch:    false,
		SundayHolidayFactor: 2,
	}
}

type WorkdayServiceImpl struct {
	punchRepo       punch.PunchRepository
	holidayRepo     holiday.HolidayRepository
	certificateRepo certificate.CertificateRepository
	scheduleService schedule.ScheduleService
	policy          Policy
	logger          *slog.Logger
}

func NewWorkdayService(
	punchRepo punch.PunchRepository,
	holidayRepo holiday.HolidayRepository,
	certificateRepo certificate.CertificateRepository,
	scheduleService schedule.ScheduleService,
	policy Policy,
	logger *slog.Logger,
) workday.WorkdayService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkdayServiceImpl{
		punchRepo:       punchRepo,
		holidayRepo:     holidayRepo,
		certificateRepo: certificateRepo,
		scheduleService: scheduleService,
		policy:          policy,
		logger:          logger,
	}
}

// CalculateDay implements workday.WorkdayService.
func (s *WorkdayServiceImpl) CalculateDay(ctx context.Context, username string, date time.Time) (workday.DailyResult, error) {
	punches, err := s.punchRepo.ListDay(ctx, username, date)
	if err != nil {
		return workday.DailyResult{}, fmt.Errorf("failed to list punches: %w", err)
	}

	result := workday.DailyResult{
		Date:       date,
		Multiplier: 1,
		FirstPunch: "00:00",
		LastPunch:  "00:00",
		PunchCount: len(punches),
	}

	valid := punches[:0:0]
	for _, p := range punches {
		if !p.Valid() {
			s.logger.Warn("skipping punch with unparseable timestamp",
				"username", username, "punch_id", p.ID, "raw", p.Raw)
			continue
		}
		valid = append(valid, p)
	}

	if len(valid) < 2 {
		result.Details = "registros insuficientes"
		return result, nil
	}

	first := valid[0].Timestamp
	last := valid[len(valid)-1].Timestamp
	result.FirstPunch = first.Format("15:04")
	result.LastPunch = last.Format("15:04")
	result.RawHours = last.Sub(first).Hours()

	var details []string

	result.NetHours = result.RawHours
	deduction := s.lunchDeduction(ctx, username, date, result.RawHours)
	if deduction > 0 {
		result.LunchDeduction = deduction
		result.NetHours -= deduction
		if result.NetHours < 0 {
			result.NetHours = 0
		}
		details = append(details, fmt.Sprintf("%.0f min de almoco descontados", deduction*60))
	}

	result.Sunday = date.Weekday() == time.Sunday
	result.Holiday = s.isHoliday(ctx, date)
	if result.Sunday || result.Holiday {
		result.Multiplier = s.policy.SundayHolidayFactor
		if result.Sunday {
			details = append(details, fmt.Sprintf("domingo: horas x%d", result.Multiplier))
		} else {
			details = append(details, fmt.Sprintf("feriado: horas x%d", result.Multiplier))
		}
	}

	result.FinalHours = result.NetHours * float64(result.Multiplier)

	certHours, err := s.certificateRepo.SumApprovedHoursByDay(ctx, username, date)
	if err != nil {
		return workday.DailyResult{}, fmt.Errorf("failed to sum certificate hours: %w", err)
	}
	if certHours > 0 {
		result.CertificateHours = certHours
		result.FinalHours -= certHours
		if result.FinalHours < 0 {
			result.FinalHours = 0
		}
		details = append(details, fmt.Sprintf("%.2fh abatidas por atestado", certHours))
	}

	result.Details = strings.Join(details, "; ")
	return result, nil
}

// CalculatePeriod implements workday.WorkdayService.
func (s *WorkdayServiceImpl) CalculatePeriod(ctx context.Context, username string, start, end time.Time) (workday.PeriodSummary, error) {
	summary := workday.PeriodSummary{Start: start, End: end}

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		result, err := s.CalculateDay(ctx, username, date)
		if err != nil {
			return workday.PeriodSummary{}, err
		}
		if result.FinalHours <= 0 {
			continue
		}

		bonus := result.Sunday || result.Holiday
		summary.Days = append(summary.Days, workday.PeriodDay{
			Date:   date,
			Hours:  result.FinalHours,
			Bonus:  bonus,
			Result: result,
		})
		summary.TotalHours += result.FinalHours
		if bonus {
			summary.SundayHolidayHours += result.FinalHours
		} else {
			summary.NormalHours += result.FinalHours
		}
		summary.DaysWorked++
	}

	return summary, nil
}

func (s *WorkdayServiceImpl) lunchDeduction(ctx context.Context, username string, date time.Time, rawHours float64) float64 {
	if s.policy.UseScheduleLunch {
		day, err := s.scheduleService.ResolveDay(ctx, username, date)
		if err != nil {
			s.logger.Warn("schedule lookup failed, falling back to fixed lunch rule",
				"username", username, "date", date.Format("2006-01-02"), "error", err)
		} else {
			if rawHours > s.policy.LunchThresholdHours && day.LunchMinutes > 0 {
				return float64(day.LunchMinutes) / 60.0
			}
			return 0
		}
	}
	if rawHours > s.policy.LunchThresholdHours {
		return s.policy.LunchDeductionHours
	}
	return 0
}

// isHoliday fails closed: a broken calendar lookup counts the day as
// ordinary rather than doubling pay on bad data.
func (s *WorkdayServiceImpl) isHoliday(ctx context.Context, date time.Time) bool {
	ok, err := s.holidayRepo.IsHoliday(ctx, date)
	if err != nil {
		s.logger.Warn("holiday lookup failed, assuming regular day",
			"date", date.Format("2006-01-02"), "error", err)
		return false
	}
	return ok
}
