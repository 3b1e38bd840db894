package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/overtime"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/middleware"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/response"
)

type OvertimeHandler interface {
	Detect(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

// Detect implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Detect(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r, "date", time.Now())
	if err != nil {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	tolerance := 0
	if raw := r.URL.Query().Get("tolerance"); raw != "" {
		tolerance, err = strconv.Atoi(raw)
		if err != nil || tolerance < 0 {
			response.BadRequest(w, "tolerance must be a non-negative integer", nil)
			return
		}
	}

	detection, err := h.overtimeService.Detect(r.Context(), middleware.Username(r), date, tolerance)
	if err != nil {
		slog.Error("Detect service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, detection)
}

// Submit implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq overtime.SubmitRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	submitReq.Username = middleware.Username(r)

	resp, err := h.overtimeService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("Submit overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted", resp)
}

// ListMine implements OvertimeHandler.
func (h *OvertimeHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	status := overtime.Status(r.URL.Query().Get("status"))

	requests, err := h.overtimeService.ListMine(r.Context(), middleware.Username(r), status)
	if err != nil {
		slog.Error("ListMine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toRequestResponses(requests))
}

// ListPending implements OvertimeHandler. Manager only.
func (h *OvertimeHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.overtimeService.ListPendingForApprover(r.Context(), middleware.Username(r))
	if err != nil {
		slog.Error("ListPending service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toRequestResponses(requests))
}

// Approve implements OvertimeHandler. Manager only.
func (h *OvertimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.overtimeService.Approve, "Overtime request approved")
}

// Reject implements OvertimeHandler. Manager only.
func (h *OvertimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.overtimeService.Reject, "Overtime request rejected")
}

func (h *OvertimeHandlerImpl) decide(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, req overtime.DecideRequest) error, message string) {
	var decideReq overtime.DecideRequest

	if r.Body != nil {
		// The notes body is optional.
		_ = json.NewDecoder(r.Body).Decode(&decideReq)
	}
	decideReq.ID = chi.URLParam(r, "id")
	decideReq.Approver = middleware.Username(r)

	if err := fn(r.Context(), decideReq); err != nil {
		slog.Error("Decide overtime service error", "error", err, "request_id", decideReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, nil)
}

func toRequestResponses(requests []overtime.Request) []overtime.RequestResponse {
	views := make([]overtime.RequestResponse, 0, len(requests))
	for _, req := range requests {
		views = append(views, overtime.NewRequestResponse(req))
	}
	return views
}
