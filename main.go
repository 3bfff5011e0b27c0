package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/harishcmuthyala/app/config"
	"github.com/harishcmuthyala/app/controllers"
	"github.com/harishcmuthyala/app/database"
	"github.com/harishcmuthyala/app/logging"
	appmiddleware "github.com/harishcmuthyala/app/middleware"
	"github.com/harishcmuthyala/app/repositories"
	"github.com/harishcmuthyala/app/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logging.Setup(cfg.LogLevel)
	defer logging.Sync(log)

	if err := run(cfg); err != nil {
		zap.S().Errorf("Server stopped: %v", err)
		logging.Sync(log)
		os.Exit(1)
	}
}

// run owns the store handle for the lifetime of the server; it is closed on
// every return path, whether shutdown came from a signal or a server error
func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize document store
	store, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			zap.S().Errorf("Failed to close database: %v", err)
		}
	}()

	// Initialize repositories
	repos := repositories.NewRepositories(store)

	// Initialize services
	srvs := services.NewServices(repos, cfg.RecentWindow)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	r := setupRouter(ctrl, store, cfg)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		zap.S().Infof("Portfolio API listening on %s (driver %s, database %s)", server.Addr, cfg.Database.Driver, cfg.Database.Name)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		zap.S().Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	return nil
}

// corsOptions allows credentialed requests from the configured origins.
// Browsers refuse a literal "*" on credentialed responses, so a wildcard
// echoes the caller's origin instead.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	for _, origin := range origins {
		if origin == "*" {
			opts.AllowedOrigins = nil
			opts.AllowOriginFunc = func(r *http.Request, origin string) bool { return true }
			break
		}
	}
	return opts
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, store database.Store, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(appmiddleware.RequestLogger)
	r.Use(appmiddleware.Metrics)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))

	// Operational endpoints
	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(10000))
	health.AddReadinessCheck("document-store", healthcheck.Timeout(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return store.Ping(ctx)
	}, 3*time.Second))
	r.Get("/healthz/live", health.LiveEndpoint)
	r.Get("/healthz/ready", health.ReadyEndpoint)
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/", ctrl.Root.Index)

		r.Route("/status", func(r chi.Router) {
			r.Get("/", ctrl.Status.Index)
			r.Post("/", ctrl.Status.Create)
		})

		r.Route("/contact", func(r chi.Router) {
			r.Get("/", ctrl.Contact.Index)
			r.Post("/", ctrl.Contact.Submit)
		})

		r.Route("/resume", func(r chi.Router) {
			r.Post("/download", ctrl.Resume.TrackDownload)
			r.Get("/stats", ctrl.Resume.Stats)
		})
	})

	return r
}
