package repositories

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"toll-road-service/internal/domain"
	"toll-road-service/internal/geo"
)

// pingRecord is the stored shape of a single roadmap entry.
type pingRecord struct {
	Car      int    `json:"car"`
	Location string `json:"location"`
	Date     string `json:"date"`
}

// JSON-file-backed implementation of the PingRepository port.
type JSONPingRepository struct{ Path string }

func NewJSONPingRepository(path string) *JSONPingRepository {
	return &JSONPingRepository{Path: path}
}

// ListPings returns every stored ping with its coordinate pair parsed out of
// the location text. Records whose location cannot be parsed are skipped.
func (r *JSONPingRepository) ListPings(ctx context.Context) ([]domain.Ping, error) {
	var records []pingRecord
	if err := readCollection(r.Path, &records); err != nil {
		return nil, fmt.Errorf("list pings: %w", err)
	}

	pings := make([]domain.Ping, 0, len(records))
	for _, rec := range records {
		pt, err := geo.ParsePoint(rec.Location)
		if err != nil {
			log.Warnf("Skipping ping for car %d: %v", rec.Car, err)
			continue
		}
		pings = append(pings, domain.Ping{VehicleID: rec.Car, Location: pt, Date: rec.Date})
	}

	return pings, nil
}

// ListPingsForVehicle returns the ping history of one vehicle.
func (r *JSONPingRepository) ListPingsForVehicle(ctx context.Context, vehicleID int) ([]domain.Ping, error) {
	pings, err := r.ListPings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pings for vehicle %d: %w", vehicleID, err)
	}

	history := make([]domain.Ping, 0, len(pings))
	for _, p := range pings {
		if p.VehicleID == vehicleID {
			history = append(history, p)
		}
	}

	return history, nil
}
