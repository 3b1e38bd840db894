package certificate

import (
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/validator"
)

type FileRequest struct {
	Username string `json:"username"`
	Date     string `json:"date"` // YYYY-MM-DD
	Start    string `json:"start"`
	End      string `json:"end"`
	Reason   string `json:"reason,omitempty"`
}

func (r *FileRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CertificateResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Date       string  `json:"date"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	TotalHours float64 `json:"total_hours"`
	Reason     *string `json:"reason,omitempty"`
	Status     string  `json:"status"`
}

func NewCertificateResponse(c Certificate) CertificateResponse {
	return CertificateResponse{
		ID:         c.ID,
		Username:   c.Username,
		Date:       c.Date.Format("2006-01-02"),
		Start:      c.Start,
		End:        c.End,
		TotalHours: c.TotalHours,
		Reason:     c.Reason,
		Status:     string(c.Status),
	}
}
