package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/timebank"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/middleware"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/response"
)

type TimeBankHandler interface {
	GetMyStatement(w http.ResponseWriter, r *http.Request)
	GetMyBalance(w http.ResponseWriter, r *http.Request)
	GetMyMonthlyReport(w http.ResponseWriter, r *http.Request)
	GetStatement(w http.ResponseWriter, r *http.Request)
	ListBalances(w http.ResponseWriter, r *http.Request)
}

type TimeBankHandlerImpl struct {
	timeBankService timebank.TimeBankService
}

func NewTimeBankHandler(timeBankService timebank.TimeBankService) TimeBankHandler {
	return &TimeBankHandlerImpl{timeBankService: timeBankService}
}

// GetMyStatement implements TimeBankHandler.
func (h *TimeBankHandlerImpl) GetMyStatement(w http.ResponseWriter, r *http.Request) {
	h.respondStatement(w, r, middleware.Username(r))
}

// GetStatement implements TimeBankHandler. Manager only.
func (h *TimeBankHandlerImpl) GetStatement(w http.ResponseWriter, r *http.Request) {
	h.respondStatement(w, r, chi.URLParam(r, "username"))
}

func (h *TimeBankHandlerImpl) respondStatement(w http.ResponseWriter, r *http.Request, username string) {
	start, end, ok := queryRange(w, r)
	if !ok {
		return
	}

	statement, err := h.timeBankService.BuildStatement(r.Context(), username, start, end)
	if err != nil {
		slog.Error("BuildStatement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success=false statements are displayable answers, not HTTP errors.
	response.Success(w, statement)
}

// GetMyBalance implements TimeBankHandler.
func (h *TimeBankHandlerImpl) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r)
	balance := h.timeBankService.CurrentBalance(r.Context(), username)

	response.Success(w, timebank.UserBalance{
		Username: username,
		Balance:  balance,
	})
}

// GetMyMonthlyReport implements TimeBankHandler.
func (h *TimeBankHandlerImpl) GetMyMonthlyReport(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	var err error
	if raw := r.URL.Query().Get("year"); raw != "" {
		if year, err = strconv.Atoi(raw); err != nil {
			response.BadRequest(w, "year must be an integer", nil)
			return
		}
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		if month, err = strconv.Atoi(raw); err != nil || month < 1 || month > 12 {
			response.BadRequest(w, "month must be between 1 and 12", nil)
			return
		}
	}

	statement, err := h.timeBankService.MonthlyReport(r.Context(), middleware.Username(r), year, time.Month(month))
	if err != nil {
		slog.Error("MonthlyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, statement)
}

// ListBalances implements TimeBankHandler. Manager only.
func (h *TimeBankHandlerImpl) ListBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.timeBankService.AllBalances(r.Context())
	if err != nil {
		slog.Error("AllBalances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}
