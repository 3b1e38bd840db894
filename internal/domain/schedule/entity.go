package schedule

import (
	"time"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
)

// DaySchedule is the resolved working window for one weekday. When Works is
// false the remaining fields carry defaults and take no part in
// expected-hours math.
type DaySchedule struct {
	Works        bool
	Start        clock.TimeOfDay
	End          clock.TimeOfDay
	LunchMinutes int
}

// Week maps every weekday to its resolved schedule.
type Week map[time.Weekday]DaySchedule

// WeekdayRow is one stored per-weekday configuration row. Start and End are
// kept as stored text; the resolver parses them and falls back to the
// defaults when they do not parse.
type WeekdayRow struct {
	ID           string
	Username     string
	Weekday      time.Weekday
	Works        bool
	Start        string
	End          string
	LunchMinutes int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultWeek returns the global fallback schedule: Monday through Friday
// 08:00-17:00 with a 60 minute lunch, weekends off.
func DefaultWeek() Week {
	workday := DaySchedule{
		Works:        true,
		Start:        clock.TimeOfDay{Hour: 8},
		End:          clock.TimeOfDay{Hour: 17},
		LunchMinutes: 60,
	}
	offday := DaySchedule{
		Works:        false,
		Start:        clock.TimeOfDay{Hour: 8},
		End:          clock.TimeOfDay{Hour: 12},
		LunchMinutes: 0,
	}
	return Week{
		time.Monday:    workday,
		time.Tuesday:   workday,
		time.Wednesday: workday,
		time.Thursday:  workday,
		time.Friday:    workday,
		time.Saturday:  offday,
		time.Sunday:    offday,
	}
}

// ExpectedDay is the expected working time for a user on a calendar date:
// (end - start), rolled to the next day for overnight windows, minus the
// lunch break, floored at zero.
type ExpectedDay struct {
	Works        bool
	Minutes      int
	Hours        float64
	Start        clock.TimeOfDay
	End          clock.TimeOfDay
	LunchMinutes int
}
