package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medrec/hospital-api/internal/config"
	adminHandler "github.com/medrec/hospital-api/internal/handler/admin"
	appointmentHandler "github.com/medrec/hospital-api/internal/handler/appointment"
	billHandler "github.com/medrec/hospital-api/internal/handler/bill"
	doctorHandler "github.com/medrec/hospital-api/internal/handler/doctor"
	pagesHandler "github.com/medrec/hospital-api/internal/handler/pages"
	patientHandler "github.com/medrec/hospital-api/internal/handler/patient"
	"github.com/medrec/hospital-api/internal/middleware"
	"github.com/medrec/hospital-api/internal/repository/sqlite"
	"github.com/medrec/hospital-api/internal/router"
	appointmentService "github.com/medrec/hospital-api/internal/service/appointment"
	authService "github.com/medrec/hospital-api/internal/service/auth"
	billService "github.com/medrec/hospital-api/internal/service/bill"
	doctorService "github.com/medrec/hospital-api/internal/service/doctor"
	patientService "github.com/medrec/hospital-api/internal/service/patient"
	"github.com/medrec/hospital-api/pkg/logger"
	"github.com/medrec/hospital-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Setup(cfg.Logging.Level)

	db, err := sqlite.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	ctx := context.Background()
	if err := sqlite.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	// Repositories
	patientRepo := sqlite.NewPatientRepository(db)
	doctorRepo := sqlite.NewDoctorRepository(db)
	appointmentRepo := sqlite.NewAppointmentRepository(db)
	billRepo := sqlite.NewBillRepository(db)
	adminRepo := sqlite.NewAdminRepository(db)

	// Services
	hasher := security.NewBcryptHasher(0)
	patientSvc := patientService.NewService(patientRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo)
	billSvc := billService.NewService(billRepo)
	authSvc := authService.NewService(adminRepo, hasher)

	// Dev-only bootstrap: seeds a default admin when the table is empty.
	// The default credential is well known, so the flag must stay off in
	// production.
	if cfg.Bootstrap.SeedAdmin {
		if err := authSvc.Bootstrap(ctx, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin account")
		}
		log.Warn().Str("username", cfg.Bootstrap.AdminUsername).Msg("dev admin seed enabled")
	}

	// Handlers
	pagesH := pagesHandler.NewHandler()
	adminH := adminHandler.NewHandler(authSvc, patientSvc, doctorSvc, appointmentSvc, billSvc)

	r := router.New(
		router.Config{
			SessionSecret: cfg.Session.Secret,
			SessionCookie: cfg.Session.CookieName,
			TemplatesGlob: cfg.Server.Templates,
			RateLimit: middleware.RateLimiterConfig{
				RPS:   cfg.RateLimit.RPS,
				Burst: cfg.RateLimit.Burst,
			},
		},
		pagesH,
		adminH,
		patientHandler.NewHandler(patientSvc),
		doctorHandler.NewHandler(doctorSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		billHandler.NewHandler(billSvc),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Server.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
