package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http/middleware"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/jwt"
)

type RouterConfig struct {
	AppName        string
	AppVersion     string
	AppEnv         string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	punchHandler PunchHandler,
	scheduleHandler ScheduleHandler,
	workdayHandler WorkdayHandler,
	overtimeHandler OvertimeHandler,
	timeBankHandler TimeBankHandler,
	holidayHandler HolidayHandler,
	certificateHandler CertificateHandler,
	absenceHandler AbsenceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.AppVersion),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/punches", func(r chi.Router) {
				r.Post("/", punchHandler.Register)
				r.Get("/", punchHandler.ListDay)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/my", scheduleHandler.GetMyWeek)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/{username}", scheduleHandler.GetWeek)
					r.Put("/{username}", scheduleHandler.SaveWeek)
				})
			})

			r.Route("/workdays", func(r chi.Router) {
				r.Get("/my/day", workdayHandler.GetMyDay)
				r.Get("/my/period", workdayHandler.GetMyPeriod)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/{username}/day", workdayHandler.GetDay)
					r.Get("/{username}/period", workdayHandler.GetPeriod)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Get("/detect", overtimeHandler.Detect)
				r.Post("/requests", overtimeHandler.Submit)
				r.Get("/requests/my", overtimeHandler.ListMine)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/requests/pending", overtimeHandler.ListPending)
					r.Post("/requests/{id}/approve", overtimeHandler.Approve)
					r.Post("/requests/{id}/reject", overtimeHandler.Reject)
				})
			})

			r.Route("/timebank", func(r chi.Router) {
				r.Get("/my/statement", timeBankHandler.GetMyStatement)
				r.Get("/my/balance", timeBankHandler.GetMyBalance)
				r.Get("/my/report", timeBankHandler.GetMyMonthlyReport)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/balances", timeBankHandler.ListBalances)
					r.Get("/{username}/statement", timeBankHandler.GetStatement)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", holidayHandler.Create)
				})
			})

			r.Route("/certificates", func(r chi.Router) {
				r.Post("/", certificateHandler.File)
				r.Get("/my", certificateHandler.ListMyApproved)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/approve", certificateHandler.Approve)
					r.Post("/{id}/reject", certificateHandler.Reject)
				})
			})

			r.Route("/absences", func(r chi.Router) {
				r.Post("/", absenceHandler.File)
				r.Get("/my", absenceHandler.ListMyUndocumented)
			})
		})
	})
	return r
}
