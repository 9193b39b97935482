package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/polesense/polesense-be/internal/http/respond"
	"github.com/polesense/polesense-be/internal/storage"
)

// alertLimit caps the alert feed at the ten most recent entries.
const alertLimit = 10

// TelemetryHandler serves telemetry samples, the alert feed, and fleet stats.
type TelemetryHandler struct {
	telemetry storage.TelemetryStore
	alerts    storage.AlertStore
	stats     storage.StatsStore
}

// NewTelemetryHandler constructs the handler.
func NewTelemetryHandler(telemetry storage.TelemetryStore, alerts storage.AlertStore, stats storage.StatsStore) *TelemetryHandler {
	return &TelemetryHandler{telemetry: telemetry, alerts: alerts, stats: stats}
}

// Register attaches telemetry routes to the router.
func (h *TelemetryHandler) Register(r chi.Router) {
	r.Get("/api/telemetry", h.handleTelemetry)
	r.Get("/api/alerts", h.handleAlerts)
	r.Get("/api/stats", h.handleStats)
}

func (h *TelemetryHandler) handleTelemetry(w http.ResponseWriter, r *http.Request) {
	poleID := r.URL.Query().Get("pole_id")
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = storage.TelemetryModeFiltered
	}

	samples, err := h.telemetry.ListTelemetry(r.Context(), poleID, mode)
	if err != nil {
		log.Error().Err(err).Str("pole_id", poleID).Str("mode", mode).Msg("list telemetry failed")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch telemetry")
		return
	}
	respond.JSON(w, http.StatusOK, samples)
}

func (h *TelemetryHandler) handleAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alerts.ListAlerts(r.Context(), alertLimit)
	if err != nil {
		log.Error().Err(err).Msg("list alerts failed")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch alerts")
		return
	}
	respond.JSON(w, http.StatusOK, alerts)
}

func (h *TelemetryHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.CountStats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("count stats failed")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	respond.JSON(w, http.StatusOK, stats)
}
