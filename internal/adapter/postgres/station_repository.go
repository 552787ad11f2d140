package postgres

import (
	"context"
	"fmt"

	"github.com/YerlanK/brigade/internal/domain"
	"github.com/YerlanK/brigade/internal/interfaces"
)

type stationRepository struct {
	db DB
}

func NewStationRepository(db DB) interfaces.StationRepository {
	return &stationRepository{db: db}
}

func (r *stationRepository) FindByID(ctx context.Context, id string) (*domain.Station, error) {
	query := `
		SELECT id, name, type, status, capacity, current_workload
		FROM stations
		WHERE id = $1
	`

	var station domain.Station
	err := r.db.QueryRow(ctx, query, id).Scan(
		&station.ID, &station.Name, &station.Type, &station.Status,
		&station.Capacity, &station.CurrentWorkload,
	)
	if err != nil {
		return nil, fmt.Errorf("station not found: %w", err)
	}

	return &station, nil
}

// ListAll returns stations in a stable order; station scoring breaks ties by
// input position, so the ordering must not vary between calls.
func (r *stationRepository) ListAll(ctx context.Context) ([]domain.Station, error) {
	query := `
		SELECT id, name, type, status, capacity, current_workload
		FROM stations
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []domain.Station
	for rows.Next() {
		var station domain.Station
		err := rows.Scan(
			&station.ID, &station.Name, &station.Type, &station.Status,
			&station.Capacity, &station.CurrentWorkload,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, station)
	}

	return stations, nil
}
