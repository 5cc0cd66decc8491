package services

import (
	"toll-road-service/internal/domain"
	"toll-road-service/internal/geo"
)

// RoadMatch pairs a ping with the name of the road segment containing it.
type RoadMatch struct {
	Ping     domain.Ping
	RoadName string
}

// WithinRadius keeps the pings strictly closer than radiusMeters to center.
func WithinRadius(pings []domain.Ping, center domain.Coordinate, radiusMeters float64) []domain.Ping {
	kept := []domain.Ping{}
	for _, p := range pings {
		if geo.Distance(p.Location, center) < radiusMeters {
			kept = append(kept, p)
		}
	}
	return kept
}

// OnNarrowRoads matches each ping against road segments narrower than
// maxWidth. A ping appears at most once, paired with the first qualifying
// segment in dataset order (not the nearest); bounding-box containment is
// inclusive on all four bounds.
func OnNarrowRoads(pings []domain.Ping, segments []domain.RoadSegment, maxWidth float64) []RoadMatch {
	matches := []RoadMatch{}
	for _, p := range pings {
		for _, seg := range segments {
			if seg.Width >= maxWidth {
				continue
			}
			if seg.Contains(p.Location) {
				matches = append(matches, RoadMatch{Ping: p, RoadName: seg.Name})
				break
			}
		}
	}
	return matches
}
