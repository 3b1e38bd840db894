package overtime

import (
	"time"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/validator"
)

type SubmitRequest struct {
	Username      string `json:"username"`
	Date          string `json:"date"` // YYYY-MM-DD
	Start         string `json:"start"`
	End           string `json:"end"`
	Justification string `json:"justification"`
	Approver      string `json:"approver"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if _, err := clock.ParseTimeOfDay(r.Start); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be HH:MM or HH:MM:SS",
		})
	}

	if _, err := clock.ParseTimeOfDay(r.End); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be HH:MM or HH:MM:SS",
		})
	}

	if validator.IsEmpty(r.Approver) {
		errs = append(errs, validator.ValidationError{
			Field:   "approver",
			Message: "approver is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitResponse struct {
	Request    RequestResponse `json:"request"`
	TotalHours float64         `json:"total_hours"`
}

// RequestResponse is the transport shape of an overtime request.
type RequestResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Date          string  `json:"date"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	Justification string  `json:"justification,omitempty"`
	Approver      string  `json:"approver"`
	Status        string  `json:"status"`
	RequestedAt   string  `json:"requested_at"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func NewRequestResponse(r Request) RequestResponse {
	return RequestResponse{
		ID:            r.ID,
		Username:      r.Username,
		Date:          r.Date.Format("2006-01-02"),
		Start:         r.Start,
		End:           r.End,
		Justification: r.Justification,
		Approver:      r.Approver,
		Status:        string(r.Status),
		RequestedAt:   r.RequestedAt.Format(time.RFC3339),
		DecidedBy:     r.DecidedBy,
		Notes:         r.Notes,
	}
}

type DecideRequest struct {
	ID       string `json:"id"`
	Approver string `json:"-"`
	Notes    string `json:"notes,omitempty"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
