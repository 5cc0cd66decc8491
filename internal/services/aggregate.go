package services

import (
	"context"
	"fmt"
	"sort"

	"toll-road-service/internal/domain"
	"toll-road-service/internal/platform/obs"
	"toll-road-service/internal/ports"
)

// Roads narrower than this are considered too narrow for big vehicles.
const NarrowRoadMaxWidth = 20

// VehicleToll is the per-vehicle line of an owner's toll rollup.
type VehicleToll struct {
	VehicleID         int
	CrossingFee       float64
	OversizeSurcharge float64
}

// OwnerTollSummary rolls the tolls of one owner's vehicles into a total.
type OwnerTollSummary struct {
	TotalToll float64
	Detail    []VehicleToll
}

// NarrowRoadSighting is a big vehicle's ping located on a narrow road.
type NarrowRoadSighting struct {
	VehicleID int
	Location  domain.Coordinate
	Date      string
	RoadName  string
}

// AggregationService answers the cross-entity queries: latest-ping
// reduction, per-owner toll rollups, and vehicle/road correlations.
type AggregationService struct {
	Owners ports.OwnerRepository
	Pings  ports.PingRepository
	Roads  ports.RoadRepository
	Toll   TollEngine
}

// LatestPingPerVehicle reduces a ping list to one ping per vehicle id, the
// one with the maximum timestamp. Ties resolve to the last ping seen in
// iteration order. Output preserves the order vehicles first appear in.
func LatestPingPerVehicle(pings []domain.Ping) []domain.Ping {
	latest := make(map[int]domain.Ping, len(pings))
	order := []int{}

	for _, p := range pings {
		best, ok := latest[p.VehicleID]
		if !ok {
			latest[p.VehicleID] = p
			order = append(order, p.VehicleID)
			continue
		}
		if !p.Timestamp().Before(best.Timestamp()) {
			latest[p.VehicleID] = p
		}
	}

	reduced := make([]domain.Ping, 0, len(order))
	for _, id := range order {
		reduced = append(reduced, latest[id])
	}
	return reduced
}

// TollForAllOwners runs the toll engine over every vehicle of every owner
// (no date filter) and sums crossing fee plus surcharge into an owner-level
// total.
func (s AggregationService) TollForAllOwners(ctx context.Context) (summary map[string]OwnerTollSummary, err error) {
	defer obs.Time(ctx, "toll_all_owners")(&err)

	byOwner, err := s.Owners.VehiclesByOwner(ctx)
	if err != nil {
		return nil, fmt.Errorf("toll for all owners: %w", err)
	}

	summary = make(map[string]OwnerTollSummary, len(byOwner))
	for ownerName, vehicleIDs := range byOwner {
		owned := OwnerTollSummary{Detail: make([]VehicleToll, 0, len(vehicleIDs))}

		for _, id := range vehicleIDs {
			statement, err := s.Toll.StatementForVehicle(ctx, id, "")
			if err != nil {
				return nil, fmt.Errorf("toll for all owners: owner %q: %w", ownerName, err)
			}

			owned.Detail = append(owned.Detail, VehicleToll{
				VehicleID:         id,
				CrossingFee:       statement.CrossingFee,
				OversizeSurcharge: statement.OversizeSurcharge,
			})
			owned.TotalToll += statement.CrossingFee + statement.OversizeSurcharge
		}

		summary[ownerName] = owned
	}

	return summary, nil
}

// BigVehiclesOnNarrowRoads intersects big vehicles' pings with road segments
// narrower than NarrowRoadMaxWidth.
func (s AggregationService) BigVehiclesOnNarrowRoads(ctx context.Context) (sightings []NarrowRoadSighting, err error) {
	defer obs.Time(ctx, "big_vehicles_on_narrow_roads")(&err)

	bigIDs, err := s.vehicleIDsOfClass(ctx, domain.ClassBig)
	if err != nil {
		return nil, fmt.Errorf("big vehicles on narrow roads: %w", err)
	}

	pings, err := s.Pings.ListPings(ctx)
	if err != nil {
		return nil, fmt.Errorf("big vehicles on narrow roads: %w", err)
	}
	bigPings := filterByVehicles(pings, bigIDs)

	segments, err := s.Roads.ListRoadSegments(ctx)
	if err != nil {
		return nil, fmt.Errorf("big vehicles on narrow roads: %w", err)
	}

	matches := OnNarrowRoads(bigPings, segments, NarrowRoadMaxWidth)

	sightings = make([]NarrowRoadSighting, 0, len(matches))
	for _, m := range matches {
		sightings = append(sightings, NarrowRoadSighting{
			VehicleID: m.Ping.VehicleID,
			Location:  m.Ping.Location,
			Date:      m.Ping.Date,
			RoadName:  m.RoadName,
		})
	}

	return sightings, nil
}

// SmallVehiclesNearStation lists small vehicles' pings within radiusMeters
// of the named station. With latestOnly set, only each vehicle's latest ping
// is considered; otherwise the whole history is searched and results are
// sorted by vehicle id.
func (s AggregationService) SmallVehiclesNearStation(ctx context.Context, stationName string, radiusMeters float64, latestOnly bool) (near []domain.Ping, err error) {
	defer obs.Time(ctx, "small_vehicles_near_station")(&err)

	station, err := s.Toll.Stations.GetStationByName(ctx, stationName)
	if err != nil {
		return nil, fmt.Errorf("small vehicles near station: %w", err)
	}

	smallIDs, err := s.vehicleIDsOfClass(ctx, domain.ClassSmall)
	if err != nil {
		return nil, fmt.Errorf("small vehicles near station: %w", err)
	}

	pings, err := s.Pings.ListPings(ctx)
	if err != nil {
		return nil, fmt.Errorf("small vehicles near station: %w", err)
	}

	if latestOnly {
		pings = LatestPingPerVehicle(pings)
	}

	near = WithinRadius(filterByVehicles(pings, smallIDs), station.Location, radiusMeters)

	if !latestOnly {
		sort.SliceStable(near, func(i, j int) bool { return near[i].VehicleID < near[j].VehicleID })
	}

	return near, nil
}

func (s AggregationService) vehicleIDsOfClass(ctx context.Context, class domain.VehicleClass) (map[int]bool, error) {
	owners, err := s.Owners.ListOwners(ctx)
	if err != nil {
		return nil, err
	}

	ids := make(map[int]bool)
	for _, owner := range owners {
		for _, car := range owner.Cars {
			if car.Class() == class {
				ids[car.ID] = true
			}
		}
	}
	return ids, nil
}

func filterByVehicles(pings []domain.Ping, ids map[int]bool) []domain.Ping {
	kept := []domain.Ping{}
	for _, p := range pings {
		if ids[p.VehicleID] {
			kept = append(kept, p)
		}
	}
	return kept
}
