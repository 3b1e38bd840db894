package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/config"
	appHTTP "github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/handler/http"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/database"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/jwt"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/repository/postgresql"
	absenceService "github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/service/absence"
	authService "github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/service/auth"
	certificateService "github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/service/certificate"
	holidayService "github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/service/holiday"
	overtimeService "github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/service/overtime"
	punchService "github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/service/punch"
	scheduleService "github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/service/schedule"
	timebankService "github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/service/timebank"
	workdayService "github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/service/workday"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
	)

	userRepo := postgresql.NewUserRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	certificateRepo := postgresql.NewCertificateRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	policy := workdayService.DefaultPolicy()

	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, logger)
	workdaySvc := workdayService.NewWorkdayService(punchRepo, holidayRepo, certificateRepo, scheduleSvc, policy, logger)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, punchRepo, scheduleSvc, logger)
	punchSvc := punchService.NewPunchService(punchRepo, scheduleSvc, logger)
	timeBankSvc := timebankService.NewTimeBankService(userRepo, punchRepo, holidayRepo, overtimeRepo, absenceRepo, certificateRepo, policy, logger)
	authSvc := authService.NewAuthService(userRepo, jwtService, logger)
	certificateSvc := certificateService.NewCertificateService(certificateRepo, logger)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, logger)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, logger)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	workdayHandler := appHTTP.NewWorkdayHandler(workdaySvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	timeBankHandler := appHTTP.NewTimeBankHandler(timeBankSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	certificateHandler := appHTTP.NewCertificateHandler(certificateSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppVersion:     cfg.App.Version,
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtService,
		authHandler,
		punchHandler,
		scheduleHandler,
		workdayHandler,
		overtimeHandler,
		timeBankHandler,
		holidayHandler,
		certificateHandler,
		absenceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
