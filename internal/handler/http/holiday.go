package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/holiday"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/response"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// List implements HolidayHandler. Defaults to the current calendar year.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	start, err := queryDate(r, "start", time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()))
	if err != nil {
		response.BadRequest(w, "start must be YYYY-MM-DD", nil)
		return
	}
	end, err := queryDate(r, "end", time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()))
	if err != nil {
		response.BadRequest(w, "end must be YYYY-MM-DD", nil)
		return
	}

	holidays, err := h.holidayService.ListRange(r.Context(), start, end)
	if err != nil {
		slog.Error("List holidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	views := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, entry := range holidays {
		views = append(views, holiday.NewHolidayResponse(entry))
	}

	response.Success(w, views)
}

// Create implements HolidayHandler. Manager only.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq holiday.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday registered", holiday.NewHolidayResponse(created))
}
