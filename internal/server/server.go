// Package server provides the HTTP server and routing for Quaggy Edge.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/quaggy/edge/internal/config"
	"github.com/quaggy/edge/internal/modules/auth"
	authhandlers "github.com/quaggy/edge/internal/modules/auth/handlers"
	"github.com/quaggy/edge/internal/modules/features"
	featureshandlers "github.com/quaggy/edge/internal/modules/features/handlers"
	filtershandlers "github.com/quaggy/edge/internal/modules/filters/handlers"
	"github.com/quaggy/edge/internal/modules/users"
)

// Config holds server configuration
type Config struct {
	Port      int
	Log       zerolog.Logger
	Config    *config.Config
	DevMode   bool
	UserStore *users.Store
	Sessions  *auth.SessionStore
	Cache     *features.Cache
	Engine    *features.Engine
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	cfg            *config.Config
	userStore      *users.Store
	sessions       *auth.SessionStore
	cache          *features.Cache
	engine         *features.Engine
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		log:            cfg.Log.With().Str("component", "server").Logger(),
		cfg:            cfg.Config,
		userStore:      cfg.UserStore,
		sessions:       cfg.Sessions,
		cache:          cfg.Cache,
		engine:         cfg.Engine,
		systemHandlers: NewSystemHandlers(cfg.Log, cfg.Cache, cfg.UserStore, cfg.Sessions),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	authhandlers.NewHandler(s.userStore, s.sessions, s.log).RegisterRoutes(s.router, s.sessions)
	filtershandlers.NewHandler(s.userStore, s.log).RegisterRoutes(s.router, s.sessions)
	featureshandlers.NewHandler(s.cache, s.engine, s.userStore, s.log).RegisterRoutes(s.router, s.sessions)

	// Ping endpoints
	s.router.Get("/api/ping", s.handlePing)
	s.router.Post("/api/ping", s.handlePing)
	s.router.Group(func(r chi.Router) {
		r.Use(s.sessions.RequireLogin)
		r.Get("/api/secure_ping", s.handleSecurePing)
		r.Post("/api/secure_ping", s.handleSecurePing)
	})
	s.router.Group(func(r chi.Router) {
		r.Use(s.sessions.RequireLogout)
		r.Get("/api/insecure_ping", s.handleInsecurePing)
		r.Post("/api/insecure_ping", s.handleInsecurePing)
	})

	// System
	s.router.Get("/api/health", s.systemHandlers.HandleHealth)
}

// Router exposes the configured router; used by handler tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("Request")
	})
}
