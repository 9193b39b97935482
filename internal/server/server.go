package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polesense/polesense-be/internal/auth"
	"github.com/polesense/polesense-be/internal/config"
	"github.com/polesense/polesense-be/internal/http/handlers"
	"github.com/polesense/polesense-be/internal/middleware"
	"github.com/polesense/polesense-be/internal/storage"
)

// Stores bundles the persistence interfaces the API serves from; a single
// postgres.Store satisfies all of them.
type Stores struct {
	Users     storage.UserStore
	Poles     storage.PoleStore
	Telemetry storage.TelemetryStore
	Alerts    storage.AlertStore
	Stats     storage.StatsStore
	Exporter  storage.Exporter
	DB        handlers.Pinger
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, stores Stores) *Server {
	return &Server{inner: &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Router(cfg, stores),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}}
}

// Router builds the full route table; exposed separately for tests.
func Router(cfg config.Config, stores Stores) http.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	authService := auth.NewService(stores.Users, tokens)

	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)

	handlers.NewHealthHandler(time.Now(), stores.DB).Register(r)
	r.Handle("/metrics", promhttp.Handler())

	handlers.NewAuthHandler(authService).Register(r)
	handlers.NewPoleHandler(stores.Poles).Register(r)
	handlers.NewTelemetryHandler(stores.Telemetry, stores.Alerts, stores.Stats).Register(r)
	handlers.NewExportHandler(stores.Exporter).Register(r)

	return middleware.CORS(cfg.CORSOrigins, r)
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
