package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/polesense/polesense-be/internal/http/respond"
	"github.com/polesense/polesense-be/internal/storage"
)

// ExportHandler streams whitelisted datasets as CSV downloads.
type ExportHandler struct {
	exporter storage.Exporter
}

// NewExportHandler constructs the handler.
func NewExportHandler(exporter storage.Exporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// Register attaches the export route to the router.
func (h *ExportHandler) Register(r chi.Router) {
	r.Get("/api/export/{dataset}", h.handleExport)
}

func (h *ExportHandler) handleExport(w http.ResponseWriter, r *http.Request) {
	dataset := chi.URLParam(r, "dataset")

	start, end, err := parseRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid date range")
		return
	}

	headers, rows, err := h.exporter.ExportTable(r.Context(), dataset, start, end)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusBadRequest, "Invalid dataset")
			return
		}
		log.Error().Err(err).Str("dataset", dataset).Msg("export failed")
		respond.Error(w, http.StatusInternalServerError, "Failed to export data")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_export.csv", dataset))

	if len(rows) == 0 {
		fmt.Fprint(w, "No data available")
		return
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		log.Error().Err(err).Msg("write csv header failed")
		return
	}
	if err := writer.WriteAll(rows); err != nil {
		log.Error().Err(err).Msg("write csv rows failed")
	}
}

// parseRange accepts date-only or RFC 3339 bounds; both must be present for
// the range to apply.
func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	if startRaw == "" || endRaw == "" {
		return time.Time{}, time.Time{}, nil
	}
	start, err := parseTimestamp(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseTimestamp(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", raw)
}
