package punch

import (
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/validator"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Kind     string `json:"kind"`
	// Timestamp is optional; empty means "now". Accepted in the same legacy
	// formats the store holds.
	Timestamp string `json:"timestamp,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if !validator.IsInSlice(r.Kind, KindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of start, intermediate, end",
		})
	}

	if r.Timestamp != "" {
		if _, err := clock.ParseStamp(r.Timestamp); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be YYYY-MM-DD HH:MM:SS",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterResponse struct {
	Punch PunchResponse `json:"punch"`
	// Advisory message from the schedule validation ("starting before
	// schedule", "not a working day", ...). Never blocks registration
	// except for non-working days.
	Warning  string `json:"warning,omitempty"`
	Category string `json:"category"`
}

// PunchResponse is the transport shape of a punch. Timestamp carries the
// stored wall-clock text so unparseable legacy rows still display.
type PunchResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Kind      string `json:"kind"`
	Timestamp string `json:"timestamp"`
	Parseable bool   `json:"parseable"`
}

func NewPunchResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:        p.ID,
		Username:  p.Username,
		Kind:      string(p.Kind),
		Timestamp: p.Raw,
		Parseable: p.Valid(),
	}
}
