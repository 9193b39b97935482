package storage

import (
	"context"
	"errors"
	"time"

	"github.com/polesense/polesense-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// TelemetryModeFiltered restricts samples to the fixed morning and evening
// reporting windows; any other mode returns the latest samples instead.
const TelemetryModeFiltered = "filtered"

// UserStore captures persistence operations needed by the auth service.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
}

// PoleStore reads the pole fleet.
type PoleStore interface {
	ListPoles(ctx context.Context) ([]models.Pole, error)
	GetPole(ctx context.Context, poleID string) (models.Pole, error)
}

// TelemetryStore reads historical samples. poleID may be empty in filtered
// mode, in which case samples for all poles are returned.
type TelemetryStore interface {
	ListTelemetry(ctx context.Context, poleID, mode string) ([]models.TelemetrySample, error)
}

// AlertStore reads the most recent alerts.
type AlertStore interface {
	ListAlerts(ctx context.Context, limit int) ([]models.Alert, error)
}

// StatsStore aggregates fleet-wide counts.
type StatsStore interface {
	CountStats(ctx context.Context) (models.FleetStats, error)
}

// Exporter dumps a whitelisted dataset as a header row plus string records.
// The time range applies only when both bounds are non-zero and the dataset
// carries a timestamp column.
type Exporter interface {
	ExportTable(ctx context.Context, dataset string, start, end time.Time) (headers []string, rows [][]string, err error)
}
