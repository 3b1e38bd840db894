package clock

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time with no date attached. Schedule rows and
// overtime request windows are stored in this form.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// Accepted textual forms, tried in order.
var timeOfDayLayouts = []string{"15:04:05", "15:04"}

var stampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

// MustTimeOfDay is for compiled-in defaults and tests.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseStamp parses a punch timestamp. Legacy rows were written by several
// client versions, so a fixed, ordered list of layouts is tried.
func ParseStamp(s string) (time.Time, error) {
	for _, layout := range stampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// Minutes returns minutes since midnight, seconds truncated.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// At anchors the time of day on a calendar date, in the date's location.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, t.Second, 0, date.Location())
}

func (t TimeOfDay) String() string {
	if t.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Before reports whether t is earlier in the day than u.
func (t TimeOfDay) Before(u TimeOfDay) bool {
	if t.Hour != u.Hour {
		return t.Hour < u.Hour
	}
	if t.Minute != u.Minute {
		return t.Minute < u.Minute
	}
	return t.Second < u.Second
}

// IsZero reports whether t is the zero value (midnight with no seconds).
func (t TimeOfDay) IsZero() bool {
	return t.Hour == 0 && t.Minute == 0 && t.Second == 0
}

// DateOnly formats a date as "YYYY-MM-DD".
func DateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
