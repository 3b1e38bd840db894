package clock

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  TimeOfDay
		ok    bool
	}{
		{"08:00", TimeOfDay{Hour: 8}, true},
		{"17:30", TimeOfDay{Hour: 17, Minute: 30}, true},
		{"08:00:30", TimeOfDay{Hour: 8, Second: 30}, true},
		{"23:59:59", TimeOfDay{Hour: 23, Minute: 59, Second: 59}, true},
		{"8h30", TimeOfDay{}, false},
		{"25:00", TimeOfDay{}, false},
		{"", TimeOfDay{}, false},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.input)
		if c.ok && err != nil {
			t.Errorf("ParseTimeOfDay(%q) unexpected error: %v", c.input, err)
			continue
		}
		if !c.ok {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q) = %v, want error", c.input, got)
			}
			continue
		}
		if got != c.want {
			t.Errorf("ParseTimeOfDay(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseStamp(t *testing.T) {
	valid := []string{
		"2024-03-15 08:00:00",
		"2024-03-15T08:00:00",
		"2024-03-15 08:00:00.123456",
		"2024-03-15 08:00",
	}
	for _, s := range valid {
		got, err := ParseStamp(s)
		if err != nil {
			t.Errorf("ParseStamp(%q) unexpected error: %v", s, err)
			continue
		}
		if got.Year() != 2024 || got.Month() != time.March || got.Day() != 15 || got.Hour() != 8 {
			t.Errorf("ParseStamp(%q) = %v", s, got)
		}
	}

	invalid := []string{"", "15/03/2024 08:00", "not-a-stamp"}
	for _, s := range invalid {
		if _, err := ParseStamp(s); err == nil {
			t.Errorf("ParseStamp(%q) = nil error, want error", s)
		}
	}
}

func TestTimeOfDayAt(t *testing.T) {
	date := time.Date(2024, 3, 15, 23, 11, 0, 0, time.Local)
	got := TimeOfDay{Hour: 8, Minute: 30}.At(date)
	want := time.Date(2024, 3, 15, 8, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("At() = %v, want %v", got, want)
	}
}

func TestTimeOfDayMinutes(t *testing.T) {
	if got := (TimeOfDay{Hour: 17, Minute: 30, Second: 59}).Minutes(); got != 1050 {
		t.Errorf("Minutes() = %d, want 1050", got)
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := (TimeOfDay{Hour: 8}).String(); got != "08:00" {
		t.Errorf("String() = %q, want %q", got, "08:00")
	}
	if got := (TimeOfDay{Hour: 8, Second: 30}).String(); got != "08:00:30" {
		t.Errorf("String() = %q, want %q", got, "08:00:30")
	}
}
