package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/polesense/polesense-be/internal/models"
	"github.com/polesense/polesense-be/internal/storage"
)

// Poles report in two fixed windows; "filtered" mode keeps only those samples.
const telemetryWindowClause = `
	(timestamp::time BETWEEN '06:30' AND '07:00'
	 OR timestamp::time BETWEEN '18:00' AND '18:30')
`

// ListTelemetry returns samples for a pole. Filtered mode restricts to the
// fixed AM/PM reporting windows (across all poles when poleID is empty);
// any other mode returns the latest 24 samples for the pole.
func (s *Store) ListTelemetry(ctx context.Context, poleID, mode string) ([]models.TelemetrySample, error) {
	var (
		rows pgx.Rows
		err  error
	)
	switch {
	case poleID != "" && mode == storage.TelemetryModeFiltered:
		rows, err = s.pool.Query(ctx, `
			SELECT pole_id, status, signal_strength, timestamp
			FROM telemetry_data
			WHERE pole_id = $1 AND `+telemetryWindowClause+`
			ORDER BY timestamp DESC;
		`, poleID)
	case poleID != "":
		rows, err = s.pool.Query(ctx, `
			SELECT pole_id, status, signal_strength, timestamp
			FROM telemetry_data
			WHERE pole_id = $1
			ORDER BY timestamp DESC
			LIMIT 24;
		`, poleID)
	default:
		rows, err = s.pool.Query(ctx, `
			SELECT pole_id, status, signal_strength, timestamp
			FROM telemetry_data
			WHERE `+telemetryWindowClause+`
			ORDER BY timestamp DESC;
		`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	samples := []models.TelemetrySample{}
	for rows.Next() {
		var sample models.TelemetrySample
		if err := rows.Scan(&sample.PoleID, &sample.Status, &sample.SignalStrength, &sample.Timestamp); err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}
