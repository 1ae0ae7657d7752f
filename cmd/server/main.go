// Package main is the entry point for the Quaggy Edge API server.
//
// The server fronts the upstream feature engine: it ingests feature
// digests into an in-memory cache, manages user accounts and their
// named filters, and evaluates filters against the cache. All state is
// in memory and lives for the process lifetime; every store is created
// here and injected explicitly.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quaggy/edge/internal/apierr"
	"github.com/quaggy/edge/internal/config"
	"github.com/quaggy/edge/internal/modules/auth"
	"github.com/quaggy/edge/internal/modules/features"
	"github.com/quaggy/edge/internal/modules/users"
	"github.com/quaggy/edge/internal/scheduler"
	"github.com/quaggy/edge/internal/server"
	"github.com/quaggy/edge/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger with config level
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	log.Info().Msg("Starting Quaggy Edge")

	apierr.DocsBaseURL = cfg.DocsBaseURL

	// Stores and engine. Everything is in memory; there is nothing to
	// open or migrate.
	userStore := users.NewStore(log)
	sessions := auth.NewSessionStore(cfg.SessionTTL, log)
	cache := features.NewCache(log)
	engine := features.NewEngine(cache, log)
	engine.StrictBounds = cfg.StrictBounds

	// Background scheduler: only the session sweep runs off the request
	// path.
	sched := scheduler.New(log)
	if err := sched.AddJob(cfg.SessionCleanupSchedule, auth.NewSessionCleanupJob(sessions)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register session cleanup job")
	}
	sched.Start()
	defer sched.Stop()

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:      cfg.Port,
		Log:       log,
		Config:    cfg,
		DevMode:   cfg.DevMode,
		UserStore: userStore,
		Sessions:  sessions,
		Cache:     cache,
		Engine:    engine,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
