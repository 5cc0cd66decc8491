package repositories

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"toll-road-service/internal/domain"
	"toll-road-service/internal/geo"
)

// roadRecord is the stored shape of a single road entry.
type roadRecord struct {
	Name  string  `json:"name"`
	Geom  string  `json:"geom"`
	Width float64 `json:"width"`
}

// JSON-file-backed implementation of the RoadRepository port.
type JSONRoadRepository struct{ Path string }

func NewJSONRoadRepository(path string) *JSONRoadRepository {
	return &JSONRoadRepository{Path: path}
}

// ListRoadSegments returns every stored road reduced to the bounding pair
// between the first and last point of its geometry text, in dataset order.
// Records whose geometry cannot be parsed are skipped.
func (r *JSONRoadRepository) ListRoadSegments(ctx context.Context) ([]domain.RoadSegment, error) {
	var records []roadRecord
	if err := readCollection(r.Path, &records); err != nil {
		return nil, fmt.Errorf("list road segments: %w", err)
	}

	segments := make([]domain.RoadSegment, 0, len(records))
	for _, rec := range records {
		start, end, err := geo.ParseSegmentEndpoints(rec.Geom)
		if err != nil {
			log.Warnf("Skipping road %q: %v", rec.Name, err)
			continue
		}
		segments = append(segments, domain.RoadSegment{
			Name:  rec.Name,
			Start: start,
			End:   end,
			Width: rec.Width,
		})
	}

	return segments, nil
}
