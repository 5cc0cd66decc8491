package ports

import (
	"context"

	"toll-road-service/internal/domain"
)

// Port: a boundary for retrieving road segments from a data source.
type RoadRepository interface {
	// Retrieve all road segments as bounding coordinate pairs, in dataset order.
	ListRoadSegments(ctx context.Context) ([]domain.RoadSegment, error)
}
