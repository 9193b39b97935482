package postgres

import (
	"context"

	"github.com/polesense/polesense-be/internal/models"
)

// ListAlerts returns the most recent alerts, newest first.
func (s *Store) ListAlerts(ctx context.Context, limit int) ([]models.Alert, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT pole_id, message, severity, alert_status,
		       alert_type, technician_id, action_taken,
		       remarks, timestamp
		FROM alerts
		ORDER BY timestamp DESC
		LIMIT $1;
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := []models.Alert{}
	for rows.Next() {
		var a models.Alert
		err := rows.Scan(
			&a.PoleID, &a.Message, &a.Severity, &a.AlertStatus,
			&a.AlertType, &a.TechnicianID, &a.ActionTaken,
			&a.Remarks, &a.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// CountStats aggregates headline counts for the dashboard.
func (s *Store) CountStats(ctx context.Context) (models.FleetStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*)::int FROM poles),
			(SELECT COUNT(*)::int FROM poles WHERE status = $1),
			(SELECT COUNT(*)::int FROM poles WHERE status = $2),
			(SELECT COUNT(*)::int FROM alerts WHERE alert_status = $3);
	`
	var stats models.FleetStats
	row := s.pool.QueryRow(ctx, query, models.PowerOn, models.PowerOff, models.AlertActive)
	if err := row.Scan(&stats.Total, &stats.Active, &stats.Inactive, &stats.Alerts); err != nil {
		return models.FleetStats{}, err
	}
	return stats, nil
}
