package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/wfap/offerdesk/docs"
	"github.com/wfap/offerdesk/internal/config"
	"github.com/wfap/offerdesk/internal/handler"
	"github.com/wfap/offerdesk/internal/logger"
	"github.com/wfap/offerdesk/internal/offer"
	"github.com/wfap/offerdesk/internal/repository"
	"github.com/wfap/offerdesk/internal/scheduler"
	"github.com/wfap/offerdesk/internal/service"
	"github.com/wfap/offerdesk/pkg/currency"
)

// @title Offer Desk API
// @version 1.0
// @description Renders credit offers from the offer-issuing service and compares them side by side.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to read .env: %v", err)
	}

	// Load configuration
	cfg := config.Load()

	// Setup structured logger
	appLogger := logger.New(cfg.Env, os.Stdout)
	logger.SetDefault(appLogger)

	// Initialize repositories
	sessionRepo := repository.NewSessionRepositoryMemory()

	var archiveRepo service.DashboardArchiveRepo = repository.NewOfferArchiveMemory()
	if cfg.UsePostgresArchive() {
		db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer func() { _ = db.Close() }()

		if _, err := db.Exec(repository.OfferArchiveSchema); err != nil {
			log.Fatalf("Failed to prepare offer archive: %v", err)
		}
		archiveRepo = repository.NewOfferArchiveRepository(db)
	}

	// Initialize services
	normalizer := offer.NewNormalizer(currency.Parse(cfg.DefaultCurrency))
	dashboardService := service.NewDashboardService(sessionRepo, archiveRepo, normalizer, service.NewLogAcceptor(appLogger))

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(handler.RequestContext)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	handler.Mount(r, dashboardService, cfg.MaxBatchBytes)

	// Session reaper
	reaper := scheduler.New(scheduler.Config{
		Schedule: cfg.SessionSweepSchedule,
		TTL:      cfg.SessionTTL,
		Enabled:  cfg.SessionSweepEnabled,
	}, dashboardService, appLogger)
	if err := reaper.Start(); err != nil {
		appLogger.Error("Failed to start session reaper", slog.String("error", err.Error()))
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		appLogger.Info("Shutting down server...")

		<-reaper.Stop().Done()
		appLogger.Info("Scheduler stopped")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			appLogger.Error("Server shutdown error", slog.String("error", err.Error()))
		}
	}()

	appLogger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("archive", cfg.OfferArchive),
		slog.String("currency", cfg.DefaultCurrency),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("Server failed: %v", err)
	}
}
