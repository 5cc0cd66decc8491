package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoadSegmentContains(t *testing.T) {
	seg := RoadSegment{
		Name:  "road-a",
		Start: Coordinate{Lon: 51.30, Lat: 35.60},
		End:   Coordinate{Lon: 51.40, Lat: 35.70},
		Width: 15,
	}

	tests := []struct {
		name string
		pt   Coordinate
		want bool
	}{
		{"inside", Coordinate{Lon: 51.35, Lat: 35.65}, true},
		{"on start corner", Coordinate{Lon: 51.30, Lat: 35.60}, true},
		{"on end corner", Coordinate{Lon: 51.40, Lat: 35.70}, true},
		{"on longitude edge", Coordinate{Lon: 51.30, Lat: 35.65}, true},
		{"west of box", Coordinate{Lon: 51.29, Lat: 35.65}, false},
		{"north of box", Coordinate{Lon: 51.35, Lat: 35.71}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seg.Contains(tt.pt))
		})
	}
}
