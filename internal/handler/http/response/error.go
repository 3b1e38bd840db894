package response

import (
	"errors"
	"net/http"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/auth"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/certificate"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/holiday"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/overtime"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/punch"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/schedule"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/user"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager role required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Punch domain errors
	case errors.Is(err, punch.ErrDuplicateStart):
		Conflict(w, "A start punch already exists for this day")
	case errors.Is(err, punch.ErrDuplicateEnd):
		Conflict(w, "An end punch already exists for this day")
	case errors.Is(err, punch.ErrInvalidKind):
		BadRequest(w, "Invalid punch kind", nil)
	case errors.Is(err, schedule.ErrNotWorkingDay):
		BadRequest(w, "Not a working day for this user", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrRequestNotFound):
		NotFound(w, "Overtime request not found or already processed")
	case errors.Is(err, overtime.ErrDuplicatePending):
		Conflict(w, "A pending overtime request already exists for this date")
	case errors.Is(err, overtime.ErrWrongApprover):
		Forbidden(w, "You are not the requested approver")

	// Calendar and certificate errors
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday is already registered on this date")
	case errors.Is(err, certificate.ErrCertificateNotFound):
		NotFound(w, "Certificate not found or already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
