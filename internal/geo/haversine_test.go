package geo

import (
	"math"
	"testing"

	"toll-road-service/internal/domain"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name             string
		a, b             domain.Coordinate
		wantMeters       float64
		tolerancePercent float64
	}{
		{
			name:             "station to nearby ping",
			a:                domain.Coordinate{Lon: 51.40, Lat: 35.70},
			b:                domain.Coordinate{Lon: 51.40001, Lat: 35.70001},
			wantMeters:       1.4,
			tolerancePercent: 10,
		},
		{
			name:             "same point",
			a:                domain.Coordinate{Lon: 51.3890, Lat: 35.6892},
			b:                domain.Coordinate{Lon: 51.3890, Lat: 35.6892},
			wantMeters:       0,
			tolerancePercent: 0,
		},
		{
			name:             "London to Paris",
			a:                domain.Coordinate{Lon: -0.1278, Lat: 51.5074},
			b:                domain.Coordinate{Lon: 2.3522, Lat: 48.8566},
			wantMeters:       343_500, // ~343.5 km
			tolerancePercent: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if tt.wantMeters == 0 {
				if got != 0 {
					t.Errorf("expected 0, got %f", got)
				}
				return
			}
			diff := math.Abs(got-tt.wantMeters) / tt.wantMeters * 100
			if diff > tt.tolerancePercent {
				t.Errorf("Distance = %f m, want ~%f m (diff %.1f%%)", got, tt.wantMeters, diff)
			}
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := domain.Coordinate{Lon: 51.3385, Lat: 35.6997}
	b := domain.Coordinate{Lon: 51.4201, Lat: 35.7312}

	if d1, d2 := Distance(a, b), Distance(b, a); d1 != d2 {
		t.Errorf("Distance not symmetric: %f != %f", d1, d2)
	}
}
