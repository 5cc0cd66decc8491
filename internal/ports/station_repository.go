package ports

import (
	"context"

	"toll-road-service/internal/domain"
)

// Port: a boundary for retrieving toll stations from a data source.
type StationRepository interface {
	// Retrieve all toll stations.
	ListStations(ctx context.Context) ([]domain.Station, error)
	// Look up a station by exact name. Returns domain.ErrNotFound when absent.
	GetStationByName(ctx context.Context, name string) (domain.Station, error)
}
