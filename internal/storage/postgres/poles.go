package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/polesense/polesense-be/internal/models"
	"github.com/polesense/polesense-be/internal/storage"
)

const poleColumns = `
	pole_id, cluster_id, latitude, longitude,
	status, communication_status, state, district,
	city_or_village, mode, firmware_version, update_time
`

// ListPoles returns every pole in the fleet.
func (s *Store) ListPoles(ctx context.Context) ([]models.Pole, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+poleColumns+` FROM poles;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	poles := []models.Pole{}
	for rows.Next() {
		pole, err := scanPole(rows)
		if err != nil {
			return nil, err
		}
		poles = append(poles, pole)
	}
	return poles, rows.Err()
}

// GetPole fetches one pole by identifier.
func (s *Store) GetPole(ctx context.Context, poleID string) (models.Pole, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+poleColumns+` FROM poles WHERE pole_id = $1;`, poleID)
	pole, err := scanPole(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Pole{}, storage.ErrNotFound
		}
		return models.Pole{}, err
	}
	return pole, nil
}

func scanPole(row pgx.Row) (models.Pole, error) {
	var p models.Pole
	err := row.Scan(
		&p.PoleID, &p.ClusterID, &p.Latitude, &p.Longitude,
		&p.Status, &p.CommunicationStatus, &p.State, &p.District,
		&p.CityOrVillage, &p.Mode, &p.FirmwareVersion, &p.UpdateTime,
	)
	return p, err
}
