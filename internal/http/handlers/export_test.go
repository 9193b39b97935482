package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportRouter(exporter *fakeExporter) http.Handler {
	r := chi.NewRouter()
	NewExportHandler(exporter).Register(r)
	return r
}

func TestExportCSV(t *testing.T) {
	exporter := &fakeExporter{
		headers: []string{"pole_id", "status", "timestamp"},
		rows: [][]string{
			{"P-1", "OK", "2026-03-01T06:45:00Z"},
			{"P-2", "OK", "2026-03-01T18:05:00Z"},
		},
	}
	router := newExportRouter(exporter)

	req := httptest.NewRequest(http.MethodGet, "/api/export/telemetry", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=telemetry_export.csv", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "pole_id,status,timestamp\nP-1,OK,2026-03-01T06:45:00Z\nP-2,OK,2026-03-01T18:05:00Z\n", rec.Body.String())
}

func TestExportEmptyDataset(t *testing.T) {
	router := newExportRouter(&fakeExporter{headers: []string{"pole_id"}})

	req := httptest.NewRequest(http.MethodGet, "/api/export/poles", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No data available", rec.Body.String())
}

func TestExportInvalidDataset(t *testing.T) {
	router := newExportRouter(&fakeExporter{})

	req := httptest.NewRequest(http.MethodGet, "/api/export/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid dataset")
}

func TestExportDateRange(t *testing.T) {
	exporter := &fakeExporter{headers: []string{"pole_id"}, rows: [][]string{{"P-1"}}}
	router := newExportRouter(exporter)

	req := httptest.NewRequest(http.MethodGet, "/api/export/alerts?start=2026-03-01&end=2026-03-02", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), exporter.start)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), exporter.end)
}

func TestExportBadDateRange(t *testing.T) {
	router := newExportRouter(&fakeExporter{})

	req := httptest.NewRequest(http.MethodGet, "/api/export/alerts?start=yesterday&end=today", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid date range")
}
