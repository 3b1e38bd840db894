package absence

import (
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/validator"
)

type FileRequest struct {
	Username   string `json:"username"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`
	Kind       string `json:"kind"`
	Reason     string `json:"reason,omitempty"`
	NoDocument bool   `json:"no_document"`
}

func (r *FileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Kind) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AbsenceResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Kind       string  `json:"kind"`
	Reason     *string `json:"reason,omitempty"`
	NoDocument bool    `json:"no_document"`
	Status     string  `json:"status"`
}

func NewAbsenceResponse(a Absence) AbsenceResponse {
	return AbsenceResponse{
		ID:         a.ID,
		Username:   a.Username,
		StartDate:  a.StartDate.Format("2006-01-02"),
		EndDate:    a.EndDate.Format("2006-01-02"),
		Kind:       a.Kind,
		Reason:     a.Reason,
		NoDocument: a.NoDocument,
		Status:     a.Status,
	}
}
