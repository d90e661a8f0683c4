package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nutriplan/diet-optimizer/internal/config"
	"github.com/nutriplan/diet-optimizer/internal/handlers"
	"github.com/nutriplan/diet-optimizer/internal/lp"
	"github.com/nutriplan/diet-optimizer/internal/middleware"
	"github.com/nutriplan/diet-optimizer/internal/repository"
	"github.com/nutriplan/diet-optimizer/internal/service"
	"github.com/nutriplan/diet-optimizer/internal/solver"
	"github.com/nutriplan/diet-optimizer/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting meal plan optimizer server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize the menu repository from configured dataset files, falling
	// back to the embedded reference dataset
	var menuRepo *repository.InMemoryMenuRepository
	if len(cfg.Dataset.Files) > 0 {
		log.Info("loading dataset files", "files", cfg.Dataset.Files)
		menuRepo, err = repository.NewMenuRepositoryFromFiles(context.Background(), cfg.Dataset.Files)
	} else {
		menuRepo, err = repository.NewInMemoryMenuRepository()
	}
	if err != nil {
		log.Error("failed to load menu dataset", "error", err)
		os.Exit(1)
	}

	// Initialize services
	menuService := service.NewMenuService(menuRepo)
	plannerService := service.NewPlannerService(
		menuRepo,
		func() lp.Backend { return solver.NewSimplex() },
		cfg.Solver.MinTolerance,
		log,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	menuHandler := handlers.NewMenuHandler(menuService, log)
	guidelineHandler := handlers.NewGuidelineHandler(menuService)
	planHandler := handlers.NewPlanHandler(plannerService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check and metrics endpoints
	r.Get("/health", healthHandler.ServeHTTP)
	if cfg.Metrics.Enabled {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Menu endpoints
		r.Get("/menu", menuHandler.ListFoods)
		r.Get("/menu/{foodId}", menuHandler.GetFood)

		// Guideline endpoints
		r.Get("/guidelines", guidelineHandler.ListGuidelines)

		// Plan endpoints require an API key
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))
			r.Post("/plan", planHandler.CreatePlan)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
