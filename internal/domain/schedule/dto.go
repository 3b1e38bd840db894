package schedule

import (
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/validator"
)

type DayConfig struct {
	Weekday      int    `json:"weekday"` // 1=Monday ... 7=Sunday
	Works        bool   `json:"works"`
	Start        string `json:"start"`
	End          string `json:"end"`
	LunchMinutes int    `json:"lunch_minutes"`
}

type UpdateWeekRequest struct {
	Username string      `json:"username"`
	Days     []DayConfig `json:"days"`
}

func (r *UpdateWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if len(r.Days) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "at least one day configuration is required",
		})
	}

	for _, d := range r.Days {
		if d.Weekday < 1 || d.Weekday > 7 {
			errs = append(errs, validator.ValidationError{
				Field:   "weekday",
				Message: "weekday must be between 1 (Monday) and 7 (Sunday)",
			})
			continue
		}
		if !d.Works {
			continue
		}
		if _, err := clock.ParseTimeOfDay(d.Start); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "start",
				Message: "start must be HH:MM or HH:MM:SS",
			})
		}
		if _, err := clock.ParseTimeOfDay(d.End); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "end",
				Message: "end must be HH:MM or HH:MM:SS",
			})
		}
		if d.LunchMinutes < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "lunch_minutes",
				Message: "lunch_minutes must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayResponse struct {
	Weekday      int    `json:"weekday"`
	Works        bool   `json:"works"`
	Start        string `json:"start"`
	End          string `json:"end"`
	LunchMinutes int    `json:"lunch_minutes"`
}

type WeekResponse struct {
	Username string        `json:"username"`
	Days     []DayResponse `json:"days"`
}
