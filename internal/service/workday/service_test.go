package workday

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/certificate"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/holiday"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/punch"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/schedule"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
)

type fakePunchRepo struct {
	byDay   map[string][]punch.Punch // keyed by username + "|" + date
	listErr error
}

func newFakePunchRepo() *fakePunchRepo {
	return &fakePunchRepo{byDay: make(map[string][]punch.Punch)}
}

func dayKey(username string, date time.Time) string {
	return username + "|" + clock.DateOnly(date)
}

func (f *fakePunchRepo) add(username string, stamp string, kind punch.Kind) {
	ts, err := clock.ParseStamp(stamp)
	if err != nil {
		ts = time.Time{}
	}
	p := punch.Punch{Username: username, Kind: kind, Timestamp: ts, Raw: stamp}
	key := username + "|" + stamp[:10]
	f.byDay[key] = append(f.byDay[key], p)
}

func (f *fakePunchRepo) Create(_ context.Context, p punch.Punch) (punch.Punch, error) {
	key := dayKey(p.Username, p.Timestamp)
	f.byDay[key] = append(f.byDay[key], p)
	return p, nil
}

func (f *fakePunchRepo) ListDay(_ context.Context, username string, date time.Time) ([]punch.Punch, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byDay[dayKey(username, date)], nil
}

func (f *fakePunchRepo) ListRange(_ context.Context, username string, start, end time.Time) ([]punch.Punch, error) {
	var out []punch.Punch
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, f.byDay[dayKey(username, d)]...)
	}
	return out, nil
}

func (f *fakePunchRepo) CountKindsByDay(_ context.Context, username string, date time.Time) (map[punch.Kind]int, error) {
	counts := make(map[punch.Kind]int)
	for _, p := range f.byDay[dayKey(username, date)] {
		counts[p.Kind]++
	}
	return counts, nil
}

type fakeHolidayRepo struct {
	dates map[string]bool
	err   error
}

func newFakeHolidayRepo(dates ...string) *fakeHolidayRepo {
	m := make(map[string]bool)
	for _, d := range dates {
		m[d] = true
	}
	return &fakeHolidayRepo{dates: m}
}

func (f *fakeHolidayRepo) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.dates[clock.DateOnly(date)], nil
}

func (f *fakeHolidayRepo) ListRange(_ context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if f.dates[clock.DateOnly(d)] {
			out = append(out, holiday.Holiday{Date: d})
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.dates[clock.DateOnly(h.Date)] = true
	return h, nil
}

type fakeCertificateRepo struct {
	hoursByDay map[string]float64
	sumErr     error
}

func newFakeCertificateRepo() *fakeCertificateRepo {
	return &fakeCertificateRepo{hoursByDay: make(map[string]float64)}
}

func (f *fakeCertificateRepo) Create(_ context.Context, c certificate.Certificate) (certificate.Certificate, error) {
	return c, nil
}

func (f *fakeCertificateRepo) SumApprovedHoursByDay(_ context.Context, username string, date time.Time) (float64, error) {
	if f.sumErr != nil {
		return 0, f.sumErr
	}
	return f.hoursByDay[dayKey(username, date)], nil
}

func (f *fakeCertificateRepo) ListApprovedRange(_ context.Context, _ string, _, _ time.Time) ([]certificate.Certificate, error) {
	return nil, nil
}

func (f *fakeCertificateRepo) Decide(_ context.Context, _ string, _ certificate.Status, _ string) error {
	return nil
}

type stubScheduleService struct {
	day schedule.DaySchedule
}

func (s *stubScheduleService) GetWeek(_ context.Context, _ string) (schedule.Week, error) {
	return schedule.DefaultWeek(), nil
}

func (s *stubScheduleService) ResolveDay(_ context.Context, _ string, _ time.Time) (schedule.DaySchedule, error) {
	return s.day, nil
}

func (s *stubScheduleService) ExpectedDay(_ context.Context, _ string, _ time.Time) (schedule.ExpectedDay, error) {
	return schedule.ExpectedDay{}, nil
}

func (s *stubScheduleService) SaveWeek(_ context.Context, _ schedule.UpdateWeekRequest) (schedule.WeekResponse, error) {
	return schedule.WeekResponse{}, nil
}

func newTestService(punches *fakePunchRepo, holidays *fakeHolidayRepo, certs *fakeCertificateRepo) *WorkdayServiceImpl {
	svc := NewWorkdayService(punches, holidays, certs, &stubScheduleService{}, DefaultPolicy(), slog.Default())
	return svc.(*WorkdayServiceImpl)
}

var (
	monday = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
)

func TestCalculateDay_RegularDayWithLunch(t *testing.T) {
	punches := newFakePunchRepo()
	punches.add("maria", "2026-08-24 08:00:00", punch.KindStart)
	punches.add("maria", "2026-08-24 17:00:00", punch.KindEnd)
	svc := newTestService(punches, newFakeHolidayRepo(), newFakeCertificateRepo())

	result, err := svc.CalculateDay(context.Background(), "maria", monday)
	require.NoError(t, err)

	assert.InDelta(t, 9.0, result.RawHours, 1e-9)
	assert.InDelta(t, 1.0, result.LunchDeduction, 1e-9)
	assert.InDelta(t, 8.0, result.NetHours, 1e-9)
	assert.InDelta(t, 8.0, result.FinalHours, 1e-9)
	assert.Equal(t, 1, result.Multiplier)
	assert.Equal(t, "08:00", result.FirstPunch)
	assert.Equal(t, "17:00", result.LastPunch)
	assert.Equal(t, 2, result.PunchCount)
}

func TestCalculateDay_ShortDayNoLunchDeduction(t *testing.T) {
	punches := newFakePunchRepo()
	punches.add("maria", "2026-08-24 08:00:00", punch.KindStart)
	punches.add("maria", "2026-08-24 14:00:00", punch.KindEnd)
	svc := newTestService(punches, newFakeHolidayRepo(), newFakeCertificateRepo())

	result, err := svc.CalculateDay(context.Background(), "maria", monday)
	require.NoError(t, err)

	// Exactly six raw hours stays under the strict threshold.
	assert.InDelta(t, 6.0, result.RawHours, 1e-9)
	assert.Zero(t, result.LunchDeduction)
	assert.InDelta(t, 6.0, result.FinalHours, 1e-9)
}

func TestCalculateDay_SundayDoubles(t *testing.T) {
	punches := newFakePunchRepo()
	punches.add("maria", "2026-08-23 08:00:00", punch.KindStart)
	punches.add("maria", "2026-08-23 12:00:00", punch.KindEnd)
	svc := newTestService(punches, newFakeHolidayRepo(), newFakeCertificateRepo())

	result, err := svc.CalculateDay(context.Background(), "maria", sunday)
	require.NoError(t, err)

	assert.True(t, result.Sunday)
	assert.Equal(t, 2, result.Multiplier)
	assert.InDelta(t, 4.0, result.NetHours, 1e-9)
	assert.InDelta(t, 8.0, result.FinalHours, 1e-9)
}

func TestCalculateDay_HolidayDoubles(t *testing.T) {
	punches := newFakePunchRepo()
	punches.add("maria", "2026-08-24 08:00:00", punch.KindStart)
	punches.add("maria", "2026-08-24 12:00:00", punch.KindEnd)
	svc := newTestService(punches, newFakeHolidayRepo("2026-08-24"), newFakeCertificateRepo())

	result, err := svc.CalculateDay(context.Background(), "maria", monday)
	require.NoError(t, err)

	assert.True(t, result.Holiday)
	assert.Equal(t, 2, result.Multiplier)
	assert.InDelta(t, 8.0, result.FinalHours, 1e-9)
}

func TestCalculateDay_HolidayLookupFailureAssumesRegularDay(t *testing.T) {
	punches := newFakePunchRepo()
	punches.add("maria", "2026-08-24 08:00:00", punch.KindStart)
	punches.add("maria", "2026-08-24 12:00:00", punch.KindEnd)
	holidays := newFakeHolidayRepo()
	holidays.err = errors.New("calendar unavailable")
	svc := newTestService(punches, holidays, newFakeCertificateRepo())

	result, err := svc.CalculateDay(context.Background(), "maria", monday)
	require.NoError(t, err)

	assert.False(t, result.Holiday)
	assert.Equal(t, 1, result.Multiplier)
}

func TestCalculateDay_CertificateDebitFloorsAtZero(t *testing.T) {
	punches := newFakePunchRepo()
	punches.add("maria", "2026-08-24 08:00:00", punch.KindStart)
	punches.add("maria", "2026-08-24 10:00:00", punch.KindEnd)
	certs := newFakeCertificateRepo()
	certs.hoursByDay[dayKey("maria", monday)] = 4
	svc := newTestService(punches, newFakeHolidayRepo(), certs)

	result, err := svc.CalculateDay(context.Background(), "maria", monday)
	require.NoError(t, err)

	assert.InDelta(t, 4.0, result.CertificateHours, 1e-9)
	assert.Zero(t, result.FinalHours)
}

func TestCalculateDay_FewerThanTwoPunchesYieldsZero(t *testing.T) {
	punches := newFakePunchRepo()
	punches.add("maria", "2026-08-24 08:00:00", punch.KindStart)
	svc := newTestService(punches, newFakeHolidayRepo(), newFakeCertificateRepo())

	result, err := svc.CalculateDay(context.Background(), "maria", monday)
	require.NoError(t, err)

	assert.Zero(t, result.FinalHours)
	assert.Equal(t, 1, result.PunchCount)
	assert.Equal(t, "00:00", result.FirstPunch)
	assert.Equal(t, "00:00", result.LastPunch)
}

func TestCalculateDay_UnparseablePunchSkippedButCounted(t *testing.T) {
	punches := newFakePunchRepo()
	punches.add("maria", "2026-08-24 08:00:00", punch.KindStart)
	punches.add("maria", "2026-08-24 garbage", punch.KindIntermediate)
	punches.add("maria", "2026-08-24 17:00:00", punch.KindEnd)
	svc := newTestService(punches, newFakeHolidayRepo(), newFakeCertificateRepo())

	result, err := svc.CalculateDay(context.Background(), "maria", monday)
	require.NoError(t, err)

	assert.Equal(t, 3, result.PunchCount)
	assert.InDelta(t, 9.0, result.RawHours, 1e-9)
}

func TestCalculateDay_ScheduleLunchPolicy(t *testing.T) {
	punches := newFakePunchRepo()
	punches.add("maria", "2026-08-24 08:00:00", punch.KindStart)
	punches.add("maria", "2026-08-24 17:00:00", punch.KindEnd)

	policy := DefaultPolicy()
	policy.UseScheduleLunch = true
	stub := &stubScheduleService{day: schedule.DaySchedule{Works: true, LunchMinutes: 30}}
	svc := NewWorkdayService(punches, newFakeHolidayRepo(), newFakeCertificateRepo(), stub, policy, slog.Default())

	result, err := svc.CalculateDay(context.Background(), "maria", monday)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, result.LunchDeduction, 1e-9)
	assert.InDelta(t, 8.5, result.FinalHours, 1e-9)
}

func TestCalculateDay_PunchListErrorPropagates(t *testing.T) {
	punches := newFakePunchRepo()
	punches.listErr = errors.New("query timeout")
	svc := newTestService(punches, newFakeHolidayRepo(), newFakeCertificateRepo())

	_, err := svc.CalculateDay(context.Background(), "maria", monday)
	require.Error(t, err)
	assert.ErrorContains(t, err, "query timeout")
}

func TestCalculatePeriod_AggregatesAndSplitsBonusHours(t *testing.T) {
	punches := newFakePunchRepo()
	punches.add("maria", "2026-08-23 08:00:00", punch.KindStart) // Sunday, 4h x2
	punches.add("maria", "2026-08-23 12:00:00", punch.KindEnd)
	punches.add("maria", "2026-08-24 08:00:00", punch.KindStart) // Monday, 8h
	punches.add("maria", "2026-08-24 17:00:00", punch.KindEnd)
	svc := newTestService(punches, newFakeHolidayRepo(), newFakeCertificateRepo())

	summary, err := svc.CalculatePeriod(context.Background(), "maria", sunday, monday.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.DaysWorked)
	assert.InDelta(t, 16.0, summary.TotalHours, 1e-9)
	assert.InDelta(t, 8.0, summary.NormalHours, 1e-9)
	assert.InDelta(t, 8.0, summary.SundayHolidayHours, 1e-9)
	require.Len(t, summary.Days, 2)
	assert.True(t, summary.Days[0].Bonus)
	assert.False(t, summary.Days[1].Bonus)
}
