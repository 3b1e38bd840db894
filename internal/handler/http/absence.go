package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/absence"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/middleware"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/response"
)

type AbsenceHandler interface {
	File(w http.ResponseWriter, r *http.Request)
	ListMyUndocumented(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

// File implements AbsenceHandler.
func (h *AbsenceHandlerImpl) File(w http.ResponseWriter, r *http.Request) {
	var fileReq absence.FileRequest

	if err := json.NewDecoder(r.Body).Decode(&fileReq); err != nil {
		slog.Error("File absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	fileReq.Username = middleware.Username(r)

	created, err := h.absenceService.File(r.Context(), fileReq)
	if err != nil {
		slog.Error("File absence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence filed", absence.NewAbsenceResponse(created))
}

// ListMyUndocumented implements AbsenceHandler.
func (h *AbsenceHandlerImpl) ListMyUndocumented(w http.ResponseWriter, r *http.Request) {
	start, end, ok := queryRange(w, r)
	if !ok {
		return
	}

	absences, err := h.absenceService.ListUndocumented(r.Context(), middleware.Username(r), start, end)
	if err != nil {
		slog.Error("ListMyUndocumented service error", "error", err)
		response.HandleError(w, err)
		return
	}

	views := make([]absence.AbsenceResponse, 0, len(absences))
	for _, a := range absences {
		views = append(views, absence.NewAbsenceResponse(a))
	}

	response.Success(w, views)
}
