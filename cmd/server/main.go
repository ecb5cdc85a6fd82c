package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"radiopanel/internal/config"
	"radiopanel/internal/constants"
	"radiopanel/internal/feed"
	"radiopanel/internal/handlers"
	"radiopanel/internal/logger"
	"radiopanel/internal/services"
	"radiopanel/internal/store"
	"radiopanel/internal/watcher"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Initialize Logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if cfg.InsecureSecret() {
		appLogger.Warn("SECRET_KEY is unset, using the insecure development default")
	}

	if err := os.MkdirAll(cfg.ConfigDir, constants.DirPermissions); err != nil {
		appLogger.Error("Failed to create config directory", "dir", cfg.ConfigDir, "error", err)
		os.Exit(1)
	}

	// Initialize Store and Services
	st := store.New(store.DefaultPaths(cfg.ConfigDir))
	shows := services.NewShowService(st)
	stations := services.NewStationService(st)
	podcasts := services.NewPodcastService(st)
	probe := feed.NewProbe()

	// Watch for edits made by the recorder or an operator's editor.
	wtch, err := watcher.New(cfg.ConfigDir, appLogger)
	if err != nil {
		appLogger.Warn("Config watcher disabled", "error", err)
	} else {
		defer wtch.Close()
	}

	// Initialize Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(handlers.RequestID)

	h := handlers.NewHandler(shows, stations, podcasts, probe, cfg, appLogger)
	h.RegisterRoutes(r)

	// Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		appLogger.Info("Server listening", "addr", srv.Addr, "config_dir", cfg.ConfigDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	appLogger.Info("Server exiting")
}
