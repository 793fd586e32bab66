// Package main is the entry point for the OB resident scheduling service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dfberenson/ob-resident-scheduler/internal/config"
	"github.com/dfberenson/ob-resident-scheduler/internal/handler"
	"github.com/dfberenson/ob-resident-scheduler/internal/middleware"
	"github.com/dfberenson/ob-resident-scheduler/internal/model"
	"github.com/dfberenson/ob-resident-scheduler/internal/repository"
	"github.com/dfberenson/ob-resident-scheduler/internal/service"
	"github.com/dfberenson/ob-resident-scheduler/internal/worker"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	cfg := config.Load()

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connection")
		}
	}()
	log.Info().Msg("Connected to database")

	if cfg.IsDevelopment() {
		if err := db.GORM.AutoMigrate(
			&model.ResidentRecord{},
			&model.RequestRecord{},
			&model.TimeOffRecord{},
			&model.HolidayRecord{},
			&model.SchedulePeriod{},
			&model.ScheduleVersion{},
			&model.GenerationJob{},
		); err != nil {
			log.Fatal().Err(err).Msg("Failed to auto-migrate schema")
		}
		log.Info().Msg("Auto-migrated schema (development mode only)")
	}

	residentRepo := repository.NewResidentRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	timeOffRepo := repository.NewTimeOffRepository(db)
	holidayRepo := repository.NewHolidayRepository(db)
	periodRepo := repository.NewPeriodRepository(db)
	versionRepo := repository.NewVersionRepository(db)
	jobRepo := repository.NewJobRepository(db)

	residentService := service.NewResidentService(residentRepo)
	requestService := service.NewRequestService(requestRepo)
	timeOffService := service.NewTimeOffService(timeOffRepo)
	holidayService := service.NewHolidayService(holidayRepo)
	periodService := service.NewPeriodService(periodRepo)
	scheduleService := service.NewScheduleService(periodRepo, residentRepo, requestRepo, timeOffRepo, holidayRepo, versionRepo)

	dispatcher, err := worker.NewDispatcher(scheduleService, jobRepo, cfg.MaxConcurrentSolves)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start generation dispatcher")
	}
	defer func() {
		if err := dispatcher.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Failed to shut down generation dispatcher")
		}
	}()

	jobService := service.NewJobService(jobRepo, periodRepo, dispatcher)

	residentHandler := handler.NewResidentHandler(residentService)
	requestHandler := handler.NewRequestHandler(requestService)
	timeOffHandler := handler.NewTimeOffHandler(timeOffService)
	holidayHandler := handler.NewHolidayHandler(holidayService)
	periodHandler := handler.NewPeriodHandler(periodService, jobService, scheduleService)
	versionHandler := handler.NewVersionHandler(scheduleService)
	jobHandler := handler.NewJobHandler(jobService)
	healthHandler := handler.NewHealthHandler(db)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", healthHandler.Get)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth([]byte(cfg.AuthSecret)))

		r.Route("/residents", func(r chi.Router) {
			r.Get("/", residentHandler.List)
			r.Post("/", residentHandler.Create)
			r.Get("/{id}", residentHandler.Get)
			r.Patch("/{id}", residentHandler.Update)
		})

		r.Route("/requests", func(r chi.Router) {
			r.Get("/", requestHandler.List)
			r.Post("/", requestHandler.Create)
			r.Get("/{id}", requestHandler.Get)
			r.Patch("/{id}/approve", requestHandler.Approve)
			r.Patch("/{id}/deny", requestHandler.Deny)
		})

		r.Route("/time-off", func(r chi.Router) {
			r.Get("/", timeOffHandler.List)
			r.Post("/", timeOffHandler.Create)
			r.Get("/{id}", timeOffHandler.Get)
			r.Patch("/{id}/approve", timeOffHandler.Approve)
			r.Patch("/{id}/deny", timeOffHandler.Deny)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", holidayHandler.List)
			r.Post("/", holidayHandler.Create)
			r.Delete("/{id}", holidayHandler.Delete)
			r.Post("/generate", holidayHandler.Generate)
		})

		r.Route("/periods", func(r chi.Router) {
			r.Get("/", periodHandler.List)
			r.Post("/", periodHandler.Create)
			r.Get("/{id}", periodHandler.Get)
			r.Post("/{id}/generate", periodHandler.Generate)
			r.Get("/{id}/versions", periodHandler.ListVersions)
		})

		r.Route("/versions", func(r chi.Router) {
			r.Get("/{id}", versionHandler.Get)
			r.Post("/{id}/publish", versionHandler.Publish)
		})

		r.Get("/jobs/{id}", jobHandler.Get)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
