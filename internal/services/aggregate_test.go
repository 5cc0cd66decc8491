package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toll-road-service/internal/adapters/repositories"
	"toll-road-service/internal/domain"
)

func testAggregation(owners []domain.Owner, pings []domain.Ping, segments []domain.RoadSegment) AggregationService {
	ownerRepo := &repositories.MemoryOwnerRepository{Owners: owners}
	pingRepo := &repositories.MemoryPingRepository{Pings: pings}

	return AggregationService{
		Owners: ownerRepo,
		Pings:  pingRepo,
		Roads:  &repositories.MemoryRoadRepository{Segments: segments},
		Toll: TollEngine{
			Pings:    pingRepo,
			Stations: testStations(),
			Owners:   ownerRepo,
		},
	}
}

func TestLatestPingPerVehicle(t *testing.T) {
	pings := []domain.Ping{
		{VehicleID: 1, Date: "2021-06-08T08:00:00Z"},
		{VehicleID: 2, Date: "2021-06-08T09:00:00Z"},
		{VehicleID: 1, Date: "2021-06-08T12:00:00Z"},
		{VehicleID: 1, Date: "2021-06-08T10:00:00Z"},
		{VehicleID: 2, Date: "2021-06-07T23:00:00Z"},
	}

	latest := LatestPingPerVehicle(pings)

	// Exactly one record per distinct vehicle id, holding its maximum
	// timestamp, in first-appearance order.
	require.Len(t, latest, 2)
	assert.Equal(t, 1, latest[0].VehicleID)
	assert.Equal(t, "2021-06-08T12:00:00Z", latest[0].Date)
	assert.Equal(t, 2, latest[1].VehicleID)
	assert.Equal(t, "2021-06-08T09:00:00Z", latest[1].Date)
}

func TestLatestPingPerVehicleTieLastSeenWins(t *testing.T) {
	pings := []domain.Ping{
		{VehicleID: 1, Location: domain.Coordinate{Lon: 51.1}, Date: "2021-06-08T08:00:00Z"},
		{VehicleID: 1, Location: domain.Coordinate{Lon: 51.2}, Date: "2021-06-08T08:00:00Z"},
	}

	latest := LatestPingPerVehicle(pings)

	require.Len(t, latest, 1)
	assert.Equal(t, 51.2, latest[0].Location.Lon)
}

func TestTollForAllOwners(t *testing.T) {
	load := 1.0
	owners := []domain.Owner{
		{Name: "ali", Cars: []domain.Vehicle{{ID: 1, Type: "small"}}},
		{Name: "reza", Cars: []domain.Vehicle{
			{ID: 2, Type: "big", LoadVolume: &load},
			{ID: 3, Type: "small"},
		}},
	}
	pings := []domain.Ping{
		// Vehicle 1 crosses station one.
		{VehicleID: 1, Location: domain.Coordinate{Lon: 51.40001, Lat: 35.70001}, Date: "2021-06-08T08:00:00Z"},
		// Vehicle 2 crosses stations one and three.
		{VehicleID: 2, Location: domain.Coordinate{Lon: 51.40002, Lat: 35.70001}, Date: "2021-06-08T09:00:00Z"},
		{VehicleID: 2, Location: domain.Coordinate{Lon: 51.60001, Lat: 35.80001}, Date: "2021-06-08T10:00:00Z"},
		// Vehicle 3 never crosses.
		{VehicleID: 3, Location: domain.Coordinate{Lon: 51.90, Lat: 35.90}, Date: "2021-06-08T11:00:00Z"},
	}

	summary, err := testAggregation(owners, pings, nil).TollForAllOwners(context.Background())
	require.NoError(t, err)
	require.Len(t, summary, 2)

	ali := summary["ali"]
	assert.Equal(t, 50.0, ali.TotalToll)
	require.Len(t, ali.Detail, 1)
	assert.Equal(t, 1, ali.Detail[0].VehicleID)

	// reza: vehicle 2 pays 50 + 65 crossing fee plus 300 surcharge, vehicle 3
	// pays only the unconditional zero.
	reza := summary["reza"]
	assert.Equal(t, 415.0, reza.TotalToll)
	require.Len(t, reza.Detail, 2)
	assert.Equal(t, 115.0, reza.Detail[0].CrossingFee)
	assert.Equal(t, 300.0, reza.Detail[0].OversizeSurcharge)
	assert.Equal(t, 0.0, reza.Detail[1].CrossingFee)
}

func TestBigVehiclesOnNarrowRoads(t *testing.T) {
	load := 2.0
	owners := []domain.Owner{
		{Name: "ali", Cars: []domain.Vehicle{{ID: 1, Type: "small"}}},
		{Name: "reza", Cars: []domain.Vehicle{{ID: 2, Type: "big", LoadVolume: &load}}},
	}
	segments := []domain.RoadSegment{
		{Name: "tight lane", Start: domain.Coordinate{Lon: 51.30, Lat: 35.60}, End: domain.Coordinate{Lon: 51.40, Lat: 35.70}, Width: 12},
	}
	pings := []domain.Ping{
		// Small vehicle inside the narrow road: excluded by class.
		{VehicleID: 1, Location: domain.Coordinate{Lon: 51.35, Lat: 35.65}, Date: "2021-06-08T08:00:00Z"},
		// Big vehicle inside the narrow road.
		{VehicleID: 2, Location: domain.Coordinate{Lon: 51.36, Lat: 35.66}, Date: "2021-06-08T09:00:00Z"},
		// Big vehicle outside every road.
		{VehicleID: 2, Location: domain.Coordinate{Lon: 51.90, Lat: 35.90}, Date: "2021-06-08T10:00:00Z"},
	}

	sightings, err := testAggregation(owners, pings, segments).BigVehiclesOnNarrowRoads(context.Background())
	require.NoError(t, err)

	require.Len(t, sightings, 1)
	assert.Equal(t, 2, sightings[0].VehicleID)
	assert.Equal(t, "tight lane", sightings[0].RoadName)
}

func TestSmallVehiclesNearStationLatest(t *testing.T) {
	owners := []domain.Owner{
		{Name: "ali", Cars: []domain.Vehicle{{ID: 1, Type: "small"}}},
	}
	pings := []domain.Ping{
		// Older ping near the station, latest ping far away: the latest-only
		// query must come back empty.
		{VehicleID: 1, Location: domain.Coordinate{Lon: 51.40001, Lat: 35.70001}, Date: "2021-06-08T08:00:00Z"},
		{VehicleID: 1, Location: domain.Coordinate{Lon: 51.90, Lat: 35.90}, Date: "2021-06-08T12:00:00Z"},
	}

	agg := testAggregation(owners, pings, nil)

	latest, err := agg.SmallVehiclesNearStation(context.Background(), StationOneName, 600, true)
	require.NoError(t, err)
	assert.Empty(t, latest)

	allTime, err := agg.SmallVehiclesNearStation(context.Background(), StationOneName, 600, false)
	require.NoError(t, err)
	require.Len(t, allTime, 1)
	assert.Equal(t, "2021-06-08T08:00:00Z", allTime[0].Date)
}
