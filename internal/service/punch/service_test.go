package punch

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/punch"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/schedule"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
)

type fakePunchRepo struct {
	punches []punch.Punch
}

func (f *fakePunchRepo) Create(_ context.Context, p punch.Punch) (punch.Punch, error) {
	p.ID = "p1"
	f.punches = append(f.punches, p)
	return p, nil
}

func (f *fakePunchRepo) ListDay(_ context.Context, username string, date time.Time) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range f.punches {
		if p.Username == username && clock.SameDay(p.Timestamp, date) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListRange(_ context.Context, username string, start, end time.Time) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range f.punches {
		if p.Username == username && !p.Timestamp.Before(start) && !p.Timestamp.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) CountKindsByDay(_ context.Context, username string, date time.Time) (map[punch.Kind]int, error) {
	counts := make(map[punch.Kind]int)
	for _, p := range f.punches {
		if p.Username == username && clock.SameDay(p.Timestamp, date) {
			counts[p.Kind]++
		}
	}
	return counts, nil
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

func workingStub() *stubScheduleService {
	return &stubScheduleService{day: schedule.DaySchedule{
		Works:        true,
		Start:        clock.TimeOfDay{Hour: 8},
		End:          clock.TimeOfDay{Hour: 17},
		LunchMinutes: 60,
	}}
}

func TestRegister_OnTimeStart(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewPunchService(repo, workingStub(), slog.Default())

	resp, err := svc.Register(context.Background(), punch.RegisterRequest{
		Username:  "maria",
		Kind:      "start",
		Timestamp: "2026-08-24 08:03:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "on_time", resp.Category)
	assert.Empty(t, resp.Warning)
	assert.Equal(t, "start", resp.Punch.Kind)
	require.Len(t, repo.punches, 1)
	assert.Equal(t, "2026-08-24 08:03:00", repo.punches[0].Raw)
}

func TestRegister_LateStartWarnsButRegisters(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewPunchService(repo, workingStub(), slog.Default())

	resp, err := svc.Register(context.Background(), punch.RegisterRequest{
		Username:  "maria",
		Kind:      "start",
		Timestamp: "2026-08-24 08:20:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "late", resp.Category)
	assert.Contains(t, resp.Warning, "20 minutes after")
	assert.Len(t, repo.punches, 1)
}

func TestRegister_EarlyEnd(t *testing.T) {
	svc := NewPunchService(&fakePunchRepo{}, workingStub(), slog.Default())

	resp, err := svc.Register(context.Background(), punch.RegisterRequest{
		Username:  "maria",
		Kind:      "end",
		Timestamp: "2026-08-24 16:30:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "early", resp.Category)
	assert.Contains(t, resp.Warning, "30 minutes before")
}

func TestRegister_IntermediateSkipsScheduleCheck(t *testing.T) {
	svc := NewPunchService(&fakePunchRepo{}, workingStub(), slog.Default())

	resp, err := svc.Register(context.Background(), punch.RegisterRequest{
		Username:  "maria",
		Kind:      "intermediate",
		Timestamp: "2026-08-24 03:00:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "on_time", resp.Category)
	assert.Empty(t, resp.Warning)
}

func TestRegister_DuplicateStartRejected(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewPunchService(repo, workingStub(), slog.Default())

	_, err := svc.Register(context.Background(), punch.RegisterRequest{
		Username: "maria", Kind: "start", Timestamp: "2026-08-24 08:00:00",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), punch.RegisterRequest{
		Username: "maria", Kind: "start", Timestamp: "2026-08-24 13:00:00",
	})
	assert.ErrorIs(t, err, punch.ErrDuplicateStart)
	assert.Len(t, repo.punches, 1)
}

func TestRegister_DuplicateEndRejected(t *testing.T) {
	svc := NewPunchService(&fakePunchRepo{}, workingStub(), slog.Default())

	_, err := svc.Register(context.Background(), punch.RegisterRequest{
		Username: "maria", Kind: "end", Timestamp: "2026-08-24 17:00:00",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), punch.RegisterRequest{
		Username: "maria", Kind: "end", Timestamp: "2026-08-24 18:00:00",
	})
	assert.ErrorIs(t, err, punch.ErrDuplicateEnd)
}

func TestRegister_IntermediatePunchesUnlimited(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewPunchService(repo, workingStub(), slog.Default())

	for _, stamp := range []string{"2026-08-24 12:00:00", "2026-08-24 13:00:00"} {
		_, err := svc.Register(context.Background(), punch.RegisterRequest{
			Username: "maria", Kind: "intermediate", Timestamp: stamp,
		})
		require.NoError(t, err)
	}
	assert.Len(t, repo.punches, 2)
}

func TestRegister_NonWorkingDayBlocked(t *testing.T) {
	stub := &stubScheduleService{day: schedule.DaySchedule{Works: false}}
	svc := NewPunchService(&fakePunchRepo{}, stub, slog.Default())

	_, err := svc.Register(context.Background(), punch.RegisterRequest{
		Username: "maria", Kind: "start", Timestamp: "2026-08-23 08:00:00",
	})
	assert.ErrorIs(t, err, schedule.ErrNotWorkingDay)
}

func TestRegister_InvalidKindRejected(t *testing.T) {
	svc := NewPunchService(&fakePunchRepo{}, workingStub(), slog.Default())

	_, err := svc.Register(context.Background(), punch.RegisterRequest{
		Username: "maria", Kind: "pause",
	})
	require.Error(t, err)
}

func TestListDay_FiltersByDate(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewPunchService(repo, workingStub(), slog.Default())

	for _, stamp := range []string{"2026-08-24 08:00:00", "2026-08-25 08:00:00"} {
		ts, err := clock.ParseStamp(stamp)
		require.NoError(t, err)
		_, err = repo.Create(context.Background(), punch.Punch{Username: "maria", Kind: punch.KindStart, Timestamp: ts})
		require.NoError(t, err)
	}

	day := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	punches, err := svc.ListDay(context.Background(), "maria", day)
	require.NoError(t, err)
	assert.Len(t, punches, 1)
}
