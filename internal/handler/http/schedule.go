package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/schedule"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/middleware"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/response"
	schedulesvc "github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/service/schedule"
)

type ScheduleHandler interface {
	GetMyWeek(w http.ResponseWriter, r *http.Request)
	GetWeek(w http.ResponseWriter, r *http.Request)
	SaveWeek(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// GetMyWeek implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetMyWeek(w http.ResponseWriter, r *http.Request) {
	h.respondWeek(w, r, middleware.Username(r))
}

// GetWeek implements ScheduleHandler. Manager only.
func (h *ScheduleHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	h.respondWeek(w, r, chi.URLParam(r, "username"))
}

func (h *ScheduleHandlerImpl) respondWeek(w http.ResponseWriter, r *http.Request, username string) {
	week, err := h.scheduleService.GetWeek(r.Context(), username)
	if err != nil {
		slog.Error("GetWeek service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedulesvc.WeekToResponse(username, week))
}

// SaveWeek implements ScheduleHandler. Manager only.
func (h *ScheduleHandlerImpl) SaveWeek(w http.ResponseWriter, r *http.Request) {
	var updateReq schedule.UpdateWeekRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("SaveWeek decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.Username = chi.URLParam(r, "username")

	resp, err := h.scheduleService.SaveWeek(r.Context(), updateReq)
	if err != nil {
		slog.Error("SaveWeek service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule saved", resp)
}
