package ports

import (
	"context"

	"toll-road-service/internal/domain"
)

// Port: a boundary for retrieving vehicle location pings from a data source.
type PingRepository interface {
	// Retrieve every recorded ping with parsed coordinates.
	ListPings(ctx context.Context) ([]domain.Ping, error)
	// Retrieve the ping history of a single vehicle.
	ListPingsForVehicle(ctx context.Context, vehicleID int) ([]domain.Ping, error)
}
