package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/certificate"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/middleware"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/response"
)

type CertificateHandler interface {
	File(w http.ResponseWriter, r *http.Request)
	ListMyApproved(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type CertificateHandlerImpl struct {
	certificateService certificate.CertificateService
}

func NewCertificateHandler(certificateService certificate.CertificateService) CertificateHandler {
	return &CertificateHandlerImpl{certificateService: certificateService}
}

// File implements CertificateHandler.
func (h *CertificateHandlerImpl) File(w http.ResponseWriter, r *http.Request) {
	var fileReq certificate.FileRequest

	if err := json.NewDecoder(r.Body).Decode(&fileReq); err != nil {
		slog.Error("File certificate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	fileReq.Username = middleware.Username(r)

	created, err := h.certificateService.File(r.Context(), fileReq)
	if err != nil {
		slog.Error("File certificate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Certificate filed", certificate.NewCertificateResponse(created))
}

// ListMyApproved implements CertificateHandler.
func (h *CertificateHandlerImpl) ListMyApproved(w http.ResponseWriter, r *http.Request) {
	start, end, ok := queryRange(w, r)
	if !ok {
		return
	}

	certs, err := h.certificateService.ListApproved(r.Context(), middleware.Username(r), start, end)
	if err != nil {
		slog.Error("ListMyApproved service error", "error", err)
		response.HandleError(w, err)
		return
	}

	views := make([]certificate.CertificateResponse, 0, len(certs))
	for _, c := range certs {
		views = append(views, certificate.NewCertificateResponse(c))
	}

	response.Success(w, views)
}

// Approve implements CertificateHandler. Manager only.
func (h *CertificateHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.certificateService.Approve(r.Context(), id, middleware.Username(r)); err != nil {
		slog.Error("Approve certificate service error", "error", err, "certificate_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Certificate approved", nil)
}

// Reject implements CertificateHandler. Manager only.
func (h *CertificateHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.certificateService.Reject(r.Context(), id, middleware.Username(r)); err != nil {
		slog.Error("Reject certificate service error", "error", err, "certificate_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Certificate rejected", nil)
}
