package timebank

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/absence"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/certificate"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/holiday"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/overtime"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/punch"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/timebank"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/user"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
	workdaysvc "github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/service/workday"
)

type TimeBankServiceImpl struct {
	userRepo        user.UserRepository
	punchRepo       punch.PunchRepository
	holidayRepo     holiday.HolidayRepository
	overtimeRepo    overtime.OvertimeRepository
	absenceRepo     absence.AbsenceRepository
	certificateRepo certificate.CertificateRepository
	policy          workdaysvc.Policy
	logger          *slog.Logger
}

func NewTimeBankService(
	userRepo user.UserRepository,
	punchRepo punch.PunchRepository,
	holidayRepo holiday.HolidayRepository,
	overtimeRepo overtime.OvertimeRepository,
	absenceRepo absence.AbsenceRepository,
	certificateRepo certificate.CertificateRepository,
	policy workdaysvc.Policy,
	logger *slog.Logger,
) timebank.TimeBankService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TimeBankServiceImpl{
		userRepo:        userRepo,
		punchRepo:       punchRepo,
		holidayRepo:     holidayRepo,
		overtimeRepo:    overtimeRepo,
		absenceRepo:     absenceRepo,
		certificateRepo: certificateRepo,
		policy:          policy,
		logger:          logger,
	}
}

// baseWindow is the legacy single expected-workday pair the ledger compares
// punches against. Per-weekday schedules do not participate here.
type baseWindow struct {
	start clock.TimeOfDay
	end   clock.TimeOfDay
}

// grossHours is the raw window span, before any lunch deduction. The
// unapproved-overtime check compares against this so a full on-schedule day
// does not read as overtime.
func (w baseWindow) grossHours() float64 {
	hours := float64(w.end.Minutes()-w.start.Minutes()) / 60.0
	if hours < 0 {
		hours += 24
	}
	return hours
}

func (w baseWindow) expectedHours(policy workdaysvc.Policy) float64 {
	hours := float64(w.end.Minutes()-w.start.Minutes()) / 60.0
	if hours < 0 {
		hours += 24
	}
	if hours > policy.LunchThresholdHours {
		hours -= policy.LunchDeductionHours
	}
	if hours < 0 {
		return 0
	}
	return hours
}

// BuildStatement implements timebank.TimeBankService. The generation order
// of entries is fixed so same-date ties keep a reproducible order after the
// stable date sort: punch-derived lines first, then approved overtime,
// absences and certificates.
func (s *TimeBankServiceImpl) BuildStatement(ctx context.Context, username string, start, end time.Time) (timebank.Statement, error) {
	period := timebank.Period{Start: clock.DateOnly(start), End: clock.DateOnly(end)}

	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return timebank.Statement{
				Success: false,
				Message: fmt.Sprintf("usuario %s nao encontrado", username),
				Entries: []timebank.Entry{},
				Period:  period,
			}, nil
		}
		return timebank.Statement{}, fmt.Errorf("failed to load user: %w", err)
	}

	window := s.resolveBaseWindow(u)

	entries, err := s.punchEntries(ctx, username, start, end, window)
	if err != nil {
		return timebank.Statement{}, err
	}

	overtimeEntries, err := s.overtimeEntries(ctx, username, start, end)
	if err != nil {
		return timebank.Statement{}, err
	}
	entries = append(entries, overtimeEntries...)

	absenceEntries, err := s.absenceEntries(ctx, username, start, end, window)
	if err != nil {
		return timebank.Statement{}, err
	}
	entries = append(entries, absenceEntries...)

	certEntries, err := s.certificateEntries(ctx, username, start, end)
	if err != nil {
		return timebank.Statement{}, err
	}
	entries = append(entries, certEntries...)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	balance := 0.0
	for i := range entries {
		balance += entries[i].Credit - entries[i].Debit
		entries[i].RunningBalance = balance
	}

	return timebank.Statement{
		Success:      true,
		BalanceTotal: balance,
		Entries:      entries,
		Period:       period,
	}, nil
}

// resolveBaseWindow reads the user's legacy default pair, falling back to
// the global 08:00-17:00 window when it is absent or unparseable.
func (s *TimeBankServiceImpl) resolveBaseWindow(u user.User) baseWindow {
	window := baseWindow{
		start: clock.TimeOfDay{Hour: 8},
		end:   clock.TimeOfDay{Hour: 17},
	}
	if u.DefaultStart != nil {
		if t, err := clock.ParseTimeOfDay(*u.DefaultStart); err == nil {
			window.start = t
		} else {
			s.logger.Warn("unparseable default start, using global default",
				"username", u.Username, "value", *u.DefaultStart)
		}
	}
	if u.DefaultEnd != nil {
		if t, err := clock.ParseTimeOfDay(*u.DefaultEnd); err == nil {
			window.end = t
		} else {
			s.logger.Warn("unparseable default end, using global default",
				"username", u.Username, "value", *u.DefaultEnd)
		}
	}
	return window
}

func (s *TimeBankServiceImpl) punchEntries(ctx context.Context, username string, start, end time.Time, window baseWindow) ([]timebank.Entry, error) {
	punches, err := s.punchRepo.ListRange(ctx, username, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	type bounds struct {
		first time.Time
		last  time.Time
	}
	byDay := make(map[string]bounds)
	var days []string
	for _, p := range punches {
		if !p.Valid() {
			s.logger.Warn("skipping punch with unparseable timestamp",
				"username", username, "punch_id", p.ID, "raw", p.Raw)
			continue
		}
		key := clock.DateOnly(p.Timestamp)
		b, seen := byDay[key]
		if !seen {
			byDay[key] = bounds{first: p.Timestamp, last: p.Timestamp}
			days = append(days, key)
			continue
		}
		if p.Timestamp.Before(b.first) {
			b.first = p.Timestamp
		}
		if p.Timestamp.After(b.last) {
			b.last = p.Timestamp
		}
		byDay[key] = b
	}
	sort.Strings(days)

	entries := []timebank.Entry{}
	for _, key := range days {
		b := byDay[key]
		date, err := clock.ParseDate(key)
		if err != nil {
			continue
		}

		rawHours := b.last.Sub(b.first).Hours()
		netHours := rawHours
		if rawHours > s.policy.LunchThresholdHours {
			netHours -= s.policy.LunchDeductionHours
		}

		if date.Weekday() == time.Sunday || s.isHoliday(ctx, date) {
			credit := netHours * float64(s.policy.SundayHolidayFactor)
			entries = append(entries, timebank.Entry{
				Date:        date,
				DateText:    key,
				Category:    timebank.CategoryWorkSundayHoliday,
				Description: fmt.Sprintf("Trabalho em domingo/feriado: %s", FormatHours(netHours)),
				Credit:      credit,
			})
			continue
		}

		firstClock := clock.TimeOfDay{Hour: b.first.Hour(), Minute: b.first.Minute()}
		lastClock := clock.TimeOfDay{Hour: b.last.Hour(), Minute: b.last.Minute()}

		if lateMinutes := firstClock.Minutes() - window.start.Minutes(); lateMinutes > 0 {
			entries = append(entries, timebank.Entry{
				Date:        date,
				DateText:    key,
				Category:    timebank.CategoryLateArrival,
				Description: fmt.Sprintf("Chegada atrasada: %d min apos %s", lateMinutes, window.start),
				Debit:       float64(lateMinutes) / 60.0,
			})
		}

		if earlyMinutes := window.end.Minutes() - lastClock.Minutes(); earlyMinutes > 0 {
			entries = append(entries, timebank.Entry{
				Date:        date,
				DateText:    key,
				Category:    timebank.CategoryEarlyDeparture,
				Description: fmt.Sprintf("Saida antecipada: %d min antes de %s", earlyMinutes, window.end),
				Debit:       float64(earlyMinutes) / 60.0,
			})
		}

		if rawHours > window.grossHours() {
			approved, err := s.overtimeRepo.HasApproved(ctx, username, date)
			if err != nil {
				return nil, fmt.Errorf("failed to check approved overtime: %w", err)
			}
			if !approved {
				// Visibility line only. Credit stays zero so a later
				// approved request cannot be double counted.
				entries = append(entries, timebank.Entry{
					Date:        date,
					DateText:    key,
					Category:    timebank.CategoryUnapprovedOvertime,
					Description: fmt.Sprintf("Horas alem da jornada sem aprovacao: %s", FormatHours(rawHours-window.grossHours())),
				})
			}
		}
	}

	return entries, nil
}

func (s *TimeBankServiceImpl) overtimeEntries(ctx context.Context, username string, start, end time.Time) ([]timebank.Entry, error) {
	requests, err := s.overtimeRepo.ListApprovedRange(ctx, username, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved overtime: %w", err)
	}

	var entries []timebank.Entry
	for _, req := range requests {
		hours := windowHours(req.Start, req.End)
		if hours <= 0 {
			s.logger.Warn("skipping approved overtime with unparseable window",
				"request_id", req.ID, "start", req.Start, "end", req.End)
			continue
		}
		entries = append(entries, timebank.Entry{
			Date:        req.Date,
			DateText:    clock.DateOnly(req.Date),
			Category:    timebank.CategoryApprovedOvertime,
			Description: fmt.Sprintf("Hora extra aprovada: %s as %s", req.Start, req.End),
			Credit:      hours,
		})
	}
	return entries, nil
}

func (s *TimeBankServiceImpl) absenceEntries(ctx context.Context, username string, start, end time.Time, window baseWindow) ([]timebank.Entry, error) {
	absences, err := s.absenceRepo.ListUndocumentedOverlapping(ctx, username, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	expected := window.expectedHours(s.policy)
	var entries []timebank.Entry
	for _, a := range absences {
		from := a.StartDate
		if from.Before(start) {
			from = start
		}
		to := a.EndDate
		if to.After(end) {
			to = end
		}
		for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
			wd := date.Weekday()
			if wd == time.Saturday || wd == time.Sunday {
				continue
			}
			entries = append(entries, timebank.Entry{
				Date:        date,
				DateText:    clock.DateOnly(date),
				Category:    timebank.CategoryUnexcusedAbsence,
				Description: fmt.Sprintf("Falta sem documento: %s", a.Kind),
				Debit:       expected,
			})
		}
	}
	return entries, nil
}

func (s *TimeBankServiceImpl) certificateEntries(ctx context.Context, username string, start, end time.Time) ([]timebank.Entry, error) {
	certs, err := s.certificateRepo.ListApprovedRange(ctx, username, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}

	var entries []timebank.Entry
	for _, c := range certs {
		entries = append(entries, timebank.Entry{
			Date:        c.Date,
			DateText:    clock.DateOnly(c.Date),
			Category:    timebank.CategoryCertificateDebit,
			Description: fmt.Sprintf("Atestado aprovado: %s", FormatHours(c.TotalHours)),
			Debit:       c.TotalHours,
		})
	}
	return entries, nil
}

// CurrentBalance implements timebank.TimeBankService. It fails soft: any
// error, including an unknown user, reads as a zero balance.
func (s *TimeBankServiceImpl) CurrentBalance(ctx context.Context, username string) float64 {
	now := time.Now()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	statement, err := s.BuildStatement(ctx, username, start, now)
	if err != nil {
		s.logger.Warn("balance unavailable, defaulting to zero",
			"username", username, "error", err)
		return 0
	}
	if !statement.Success {
		return 0
	}
	return statement.BalanceTotal
}

// MonthlyReport implements timebank.TimeBankService.
func (s *TimeBankServiceImpl) MonthlyReport(ctx context.Context, username string, year int, month time.Month) (timebank.Statement, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, -1)
	return s.BuildStatement(ctx, username, start, end)
}

// AllBalances implements timebank.TimeBankService.
func (s *TimeBankServiceImpl) AllBalances(ctx context.Context) ([]timebank.UserBalance, error) {
	employees, err := s.userRepo.ListActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	balances := make([]timebank.UserBalance, 0, len(employees))
	for _, emp := range employees {
		balances = append(balances, timebank.UserBalance{
			Username: emp.Username,
			Name:     emp.DisplayName(),
			Balance:  s.CurrentBalance(ctx, emp.Username),
		})
	}
	return balances, nil
}

func (s *TimeBankServiceImpl) isHoliday(ctx context.Context, date time.Time) bool {
	ok, err := s.holidayRepo.IsHoliday(ctx, date)
	if err != nil {
		s.logger.Warn("holiday lookup failed, assuming regular day",
			"date", clock.DateOnly(date), "error", err)
		return false
	}
	return ok
}

// windowHours measures an overtime window, rolling an end at or before the
// start to the next day.
func windowHours(start, end string) float64 {
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

// FormatHours renders fractional hours as "8h30min", minutes omitted when
// zero.
func FormatHours(hours float64) string {
	if hours < 0 {
		hours = -hours
	}
	total := int(hours*60 + 0.5)
	h := total / 60
	m := total % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02dmin", h, m)
}
