package repositories

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"toll-road-service/internal/domain"
	"toll-road-service/internal/geo"
)

// stationRecord is the stored shape of a single toll station entry.
type stationRecord struct {
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	TollPerCross float64 `json:"toll_per_cross"`
}

// JSON-file-backed implementation of the StationRepository port.
type JSONStationRepository struct{ Path string }

func NewJSONStationRepository(path string) *JSONStationRepository {
	return &JSONStationRepository{Path: path}
}

// ListStations returns every stored toll station with its coordinate parsed.
// Records whose location cannot be parsed are skipped.
func (r *JSONStationRepository) ListStations(ctx context.Context) ([]domain.Station, error) {
	var records []stationRecord
	if err := readCollection(r.Path, &records); err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}

	stations := make([]domain.Station, 0, len(records))
	for _, rec := range records {
		pt, err := geo.ParsePoint(rec.Location)
		if err != nil {
			log.Warnf("Skipping station %q: %v", rec.Name, err)
			continue
		}
		stations = append(stations, domain.Station{
			Name:         rec.Name,
			Location:     pt,
			TollPerCross: rec.TollPerCross,
		})
	}

	return stations, nil
}

// GetStationByName looks a station up by exact name match.
func (r *JSONStationRepository) GetStationByName(ctx context.Context, name string) (domain.Station, error) {
	stations, err := r.ListStations(ctx)
	if err != nil {
		return domain.Station{}, fmt.Errorf("get station by name: %w", err)
	}

	for _, s := range stations {
		if s.Name == name {
			return s, nil
		}
	}

	return domain.Station{}, fmt.Errorf("get station by name %q: %w", name, domain.ErrNotFound)
}
