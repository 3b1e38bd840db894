package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/workday"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/middleware"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/response"
)

type WorkdayHandler interface {
	GetMyDay(w http.ResponseWriter, r *http.Request)
	GetMyPeriod(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
}

type WorkdayHandlerImpl struct {
	workdayService workday.WorkdayService
}

func NewWorkdayHandler(workdayService workday.WorkdayService) WorkdayHandler {
	return &WorkdayHandlerImpl{workdayService: workdayService}
}

// GetMyDay implements WorkdayHandler.
func (h *WorkdayHandlerImpl) GetMyDay(w http.ResponseWriter, r *http.Request) {
	h.respondDay(w, r, middleware.Username(r))
}

// GetDay implements WorkdayHandler. Manager only.
func (h *WorkdayHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	h.respondDay(w, r, chi.URLParam(r, "username"))
}

func (h *WorkdayHandlerImpl) respondDay(w http.ResponseWriter, r *http.Request, username string) {
	date, err := queryDate(r, "date", time.Now())
	if err != nil {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.workdayService.CalculateDay(r.Context(), username, date)
	if err != nil {
		slog.Error("CalculateDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, workday.NewDailyResultResponse(result))
}

// GetMyPeriod implements WorkdayHandler.
func (h *WorkdayHandlerImpl) GetMyPeriod(w http.ResponseWriter, r *http.Request) {
	h.respondPeriod(w, r, middleware.Username(r))
}

// GetPeriod implements WorkdayHandler. Manager only.
func (h *WorkdayHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	h.respondPeriod(w, r, chi.URLParam(r, "username"))
}

func (h *WorkdayHandlerImpl) respondPeriod(w http.ResponseWriter, r *http.Request, username string) {
	start, end, ok := queryRange(w, r)
	if !ok {
		return
	}

	summary, err := h.workdayService.CalculatePeriod(r.Context(), username, start, end)
	if err != nil {
		slog.Error("CalculatePeriod service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, workday.NewPeriodSummaryResponse(summary))
}

// queryRange reads the required start/end query parameters, writing the
// error response itself when they are missing or malformed.
func queryRange(w http.ResponseWriter, r *http.Request) (start, end time.Time, ok bool) {
	start, err := queryDate(r, "start", time.Time{})
	if err != nil || start.IsZero() {
		response.BadRequest(w, "start must be YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, false
	}
	end, err = queryDate(r, "end", time.Time{})
	if err != nil || end.IsZero() {
		response.BadRequest(w, "end must be YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		response.BadRequest(w, "end must not be before start", nil)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
