package overtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/overtime"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/punch"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/schedule"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
)

type fakeOvertimeRepo struct {
	requests map[string]overtime.Request
	nextID   int
}

func newFakeOvertimeRepo() *fakeOvertimeRepo {
	return &fakeOvertimeRepo{requests: make(map[string]overtime.Request)}
}

func (f *fakeOvertimeRepo) Create(_ context.Context, req overtime.Request) (overtime.Request, error) {
	f.nextID++
	req.ID = string(rune('a' + f.nextID - 1))
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeOvertimeRepo) GetPending(_ context.Context, id string) (overtime.Request, error) {
	req, ok := f.requests[id]
	if !ok || req.Status != overtime.StatusPending {
		return overtime.Request{}, overtime.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeOvertimeRepo) ListByUser(_ context.Context, username string, status overtime.Status) ([]overtime.Request, error) {
	var out []overtime.Request
	for _, req := range f.requests {
		if req.Username == username && (status == "" || req.Status == status) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) ListPendingForApprover(_ context.Context, approver string) ([]overtime.Request, error) {
	var out []overtime.Request
	for _, req := range f.requests {
		if req.Approver == approver && req.Status == overtime.StatusPending {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) ListApprovedRange(_ context.Context, username string, start, end time.Time) ([]overtime.Request, error) {
	var out []overtime.Request
	for _, req := range f.requests {
		if req.Username == username && req.Status == overtime.StatusApproved &&
			!req.Date.Before(start) && !req.Date.After(end) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) HasPending(_ context.Context, username string, date time.Time) (bool, error) {
	for _, req := range f.requests {
		if req.Username == username && req.Status == overtime.StatusPending && clock.SameDay(req.Date, date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOvertimeRepo) HasApproved(_ context.Context, username string, date time.Time) (bool, error) {
	for _, req := range f.requests {
		if req.Username == username && req.Status == overtime.StatusApproved && clock.SameDay(req.Date, date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOvertimeRepo) Decide(_ context.Context, id string, status overtime.Status, decidedBy string, notes string) error {
	req, ok := f.requests[id]
	if !ok || req.Status != overtime.StatusPending {
		return overtime.ErrRequestNotFound
	}
	now := time.Now()
	req.Status = status
	req.DecidedBy = &decidedBy
	req.DecidedAt = &now
	if notes != "" {
		req.Notes = &notes
	}
	f.requests[id] = req
	return nil
}

type fakePunchRepo struct {
	punches []punch.Punch
}

func (f *fakePunchRepo) add(stamp string, kind punch.Kind) {
	ts, err := clock.ParseStamp(stamp)
	if err != nil {
		ts = time.Time{}
	}
	f.punches = append(f.punches, punch.Punch{Username: "maria", Kind: kind, Timestamp: ts, Raw: stamp})
}

func (f *fakePunchRepo) Create(_ context.Context, p punch.Punch) (punch.Punch, error) {
	f.punches = append(f.punches, p)
	return p, nil
}

func (f *fakePunchRepo) ListDay(_ context.Context, _ string, _ time.Time) ([]punch.Punch, error) {
	return f.punches, nil
}

func (f *fakePunchRepo) ListRange(_ context.Context, _ string, _, _ time.Time) ([]punch.Punch, error) {
	return f.punches, nil
}

func (f *fakePunchRepo) CountKindsByDay(_ context.Context, _ string, _ time.Time) (map[punch.Kind]int, error) {
	counts := make(map[punch.Kind]int)
	for _, p := range f.punches {
		counts[p.Kind]++
	}
	return counts, nil
}

type stubScheduleService struct {
	expected schedule.ExpectedDay
}

func (s *stubScheduleService) GetWeek(_ context.Context, _ string) (schedule.Week, error) {
	return schedule.DefaultWeek(), nil
}

func (s *stubScheduleService) ResolveDay(_ context.Context, _ string, _ time.Time) (schedule.DaySchedule, error) {
	return schedule.DaySchedule{}, nil
}

func (s *stubScheduleService) ExpectedDay(_ context.Context, _ string, _ time.Time) (schedule.ExpectedDay, error) {
	return s.expected, nil
}

func (s *stubScheduleService) SaveWeek(_ context.Context, _ schedule.UpdateWeekRequest) (schedule.WeekResponse, error) {
	return schedule.WeekResponse{}, nil
}

var workingDay = schedule.ExpectedDay{Works: true, Minutes: 480, Hours: 8}

var monday = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

func newDetector(punches *fakePunchRepo, expected schedule.ExpectedDay) overtime.OvertimeService {
	return NewOvertimeService(newFakeOvertimeRepo(), punches, &stubScheduleService{expected: expected}, slog.Default())
}

func TestDetect_OvertimeBeyondTolerance(t *testing.T) {
	punches := &fakePunchRepo{}
	punches.add("2026-08-24 08:00:00", punch.KindStart)
	punches.add("2026-08-24 16:30:00", punch.KindEnd) // 510 min, 30 over
	svc := newDetector(punches, workingDay)

	det, err := svc.Detect(context.Background(), "maria", monday, 0)
	require.NoError(t, err)

	assert.True(t, det.HasOvertime)
	assert.Equal(t, overtime.CategoryOvertime, det.Category)
	assert.Equal(t, 30, det.OvertimeMinutes)
	assert.InDelta(t, 0.5, det.OvertimeHours, 1e-9)
	assert.Equal(t, 480, det.ExpectedMinutes)
	assert.Equal(t, 510, det.RegisteredMinutes)
}

func TestDetect_ExactToleranceBoundaryIsOnSchedule(t *testing.T) {
	punches := &fakePunchRepo{}
	punches.add("2026-08-24 08:00:00", punch.KindStart)
	punches.add("2026-08-24 16:05:00", punch.KindEnd) // 485 min, exactly +5
	svc := newDetector(punches, workingDay)

	det, err := svc.Detect(context.Background(), "maria", monday, 5)
	require.NoError(t, err)

	assert.False(t, det.HasOvertime)
	assert.Equal(t, overtime.CategoryOnSchedule, det.Category)
}

func TestDetect_UnderSchedule(t *testing.T) {
	punches := &fakePunchRepo{}
	punches.add("2026-08-24 08:00:00", punch.KindStart)
	punches.add("2026-08-24 14:00:00", punch.KindEnd) // 360 min
	svc := newDetector(punches, workingDay)

	det, err := svc.Detect(context.Background(), "maria", monday, 5)
	require.NoError(t, err)

	assert.False(t, det.HasOvertime)
	assert.Equal(t, overtime.CategoryUnderSchedule, det.Category)
}

func TestDetect_NoPunches(t *testing.T) {
	svc := newDetector(&fakePunchRepo{}, workingDay)

	det, err := svc.Detect(context.Background(), "maria", monday, 5)
	require.NoError(t, err)

	assert.False(t, det.HasOvertime)
	assert.Equal(t, overtime.CategoryNoPunch, det.Category)
}

func TestDetect_PunchesWithoutEndRegisterZero(t *testing.T) {
	punches := &fakePunchRepo{}
	punches.add("2026-08-24 08:00:00", punch.KindStart)
	punches.add("2026-08-24 12:00:00", punch.KindIntermediate)
	svc := newDetector(punches, workingDay)

	det, err := svc.Detect(context.Background(), "maria", monday, 5)
	require.NoError(t, err)

	assert.Zero(t, det.RegisteredMinutes)
	assert.Equal(t, overtime.CategoryUnderSchedule, det.Category)
}

func TestDetect_OffDayHasNoSchedule(t *testing.T) {
	punches := &fakePunchRepo{}
	punches.add("2026-08-24 09:00:00", punch.KindStart)
	punches.add("2026-08-24 11:00:00", punch.KindEnd)
	svc := newDetector(punches, schedule.ExpectedDay{Works: false})

	det, err := svc.Detect(context.Background(), "maria", monday, 5)
	require.NoError(t, err)

	assert.False(t, det.HasOvertime)
	assert.Equal(t, overtime.CategoryNoSchedule, det.Category)
	assert.Zero(t, det.OvertimeMinutes)
	assert.Zero(t, det.RegisteredMinutes)
}

func TestDetect_LunchBreakDeductedFromRegistered(t *testing.T) {
	punches := &fakePunchRepo{}
	punches.add("2026-08-24 08:00:00", punch.KindStart)
	punches.add("2026-08-24 17:40:00", punch.KindEnd) // raw 580, minus 60 lunch = 520
	day := schedule.ExpectedDay{Works: true, Minutes: 480, Hours: 8, LunchMinutes: 60}
	svc := newDetector(punches, day)

	det, err := svc.Detect(context.Background(), "maria", monday, 5)
	require.NoError(t, err)

	assert.True(t, det.HasOvertime)
	assert.Equal(t, 520, det.RegisteredMinutes)
	assert.Equal(t, 40, det.OvertimeMinutes)
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	repo := newFakeOvertimeRepo()
	svc := NewOvertimeService(repo, &fakePunchRepo{}, &stubScheduleService{}, slog.Default())

	resp, err := svc.Submit(context.Background(), overtime.SubmitRequest{
		Username:      "maria",
		Date:          "2026-08-24",
		Start:         "18:00",
		End:           "20:30",
		Justification: "fechamento mensal",
		Approver:      "carlos",
	})
	require.NoError(t, err)

	assert.Equal(t, string(overtime.StatusPending), resp.Request.Status)
	assert.InDelta(t, 2.5, resp.TotalHours, 1e-9)
	assert.NotEmpty(t, resp.Request.ID)
}

func TestSubmit_RejectsDuplicatePending(t *testing.T) {
	repo := newFakeOvertimeRepo()
	svc := NewOvertimeService(repo, &fakePunchRepo{}, &stubScheduleService{}, slog.Default())

	req := overtime.SubmitRequest{
		Username: "maria", Date: "2026-08-24", Start: "18:00", End: "20:00", Approver: "carlos",
	}
	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, overtime.ErrDuplicatePending)
}

func TestSubmit_ValidationRejectsBadTimes(t *testing.T) {
	svc := NewOvertimeService(newFakeOvertimeRepo(), &fakePunchRepo{}, &stubScheduleService{}, slog.Default())

	_, err := svc.Submit(context.Background(), overtime.SubmitRequest{
		Username: "maria", Date: "2026-08-24", Start: "later", End: "20:00", Approver: "carlos",
	})
	require.Error(t, err)
}

func TestWindowHours_OvernightRollsToNextDay(t *testing.T) {
	assert.InDelta(t, 4.0, WindowHours("22:00", "02:00"), 1e-9)
	assert.InDelta(t, 24.0, WindowHours("08:00", "08:00"), 1e-9)
	assert.InDelta(t, 2.0, WindowHours("18:00", "20:00"), 1e-9)
}

func TestApprove_OnlyRequestedApprover(t *testing.T) {
	repo := newFakeOvertimeRepo()
	svc := NewOvertimeService(repo, &fakePunchRepo{}, &stubScheduleService{}, slog.Default())

	resp, err := svc.Submit(context.Background(), overtime.SubmitRequest{
		Username: "maria", Date: "2026-08-24", Start: "18:00", End: "20:00", Approver: "carlos",
	})
	require.NoError(t, err)

	err = svc.Approve(context.Background(), overtime.DecideRequest{ID: resp.Request.ID, Approver: "intruso"})
	assert.ErrorIs(t, err, overtime.ErrWrongApprover)

	err = svc.Approve(context.Background(), overtime.DecideRequest{ID: resp.Request.ID, Approver: "carlos"})
	require.NoError(t, err)

	approved, err := repo.HasApproved(context.Background(), "maria", monday)
	require.NoError(t, err)
	assert.True(t, approved)
}

func TestReject_MovesRequestOutOfPending(t *testing.T) {
	repo := newFakeOvertimeRepo()
	svc := NewOvertimeService(repo, &fakePunchRepo{}, &stubScheduleService{}, slog.Default())

	resp, err := svc.Submit(context.Background(), overtime.SubmitRequest{
		Username: "maria", Date: "2026-08-24", Start: "18:00", End: "20:00", Approver: "carlos",
	})
	require.NoError(t, err)

	err = svc.Reject(context.Background(), overtime.DecideRequest{ID: resp.Request.ID, Approver: "carlos", Notes: "sem verba"})
	require.NoError(t, err)

	err = svc.Approve(context.Background(), overtime.DecideRequest{ID: resp.Request.ID, Approver: "carlos"})
	assert.ErrorIs(t, err, overtime.ErrRequestNotFound)
}
