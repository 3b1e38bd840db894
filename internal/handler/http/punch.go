package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/punch"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/middleware"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/response"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
)

type PunchHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	ListDay(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// Register implements PunchHandler. The punch always belongs to the
// authenticated user; the request body cannot punch for someone else.
func (h *PunchHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq punch.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	registerReq.Username = middleware.Username(r)

	resp, err := h.punchService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch registered", resp)
}

// ListDay implements PunchHandler.
func (h *PunchHandlerImpl) ListDay(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r, "date", time.Now())
	if err != nil {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	punches, err := h.punchService.ListDay(r.Context(), middleware.Username(r), date)
	if err != nil {
		slog.Error("ListDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	views := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		views = append(views, punch.NewPunchResponse(p))
	}

	response.Success(w, views)
}

// queryDate reads an optional YYYY-MM-DD query parameter.
func queryDate(r *http.Request, key string, fallback time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return clock.ParseDate(raw)
}
