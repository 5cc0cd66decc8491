package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"toll-road-service/internal/domain"
	"toll-road-service/internal/platform/obs"
	"toll-road-service/internal/ports"
)

// A ping closer than this to a station counts as a crossing.
const CrossingRadiusMeters = 70

// Canonical toll station names, exactly as stored in the dataset.
// Station one is spelled differently from the other three in the data.
const (
	StationOneName   = "عوراضی 1"
	StationTwoName   = "عوارضی 2"
	StationThreeName = "عوارضی 3"
	StationFourName  = "عوارضی 4"
)

// CanonicalStationNames lists the four stations every toll computation
// consults, in charge order.
var CanonicalStationNames = []string{
	StationOneName,
	StationTwoName,
	StationThreeName,
	StationFourName,
}

// Crossing is a single ping that came within the crossing radius of a
// station.
type Crossing struct {
	VehicleID int
	Location  domain.Coordinate
	Date      string
	Toll      float64
}

// StationCharge is the per-station outcome of a toll computation. Crossed
// distinguishes "no crossing" from a crossing that happened to charge zero.
type StationCharge struct {
	Station   string
	Crossed   bool
	Amount    float64
	Crossings []Crossing
}

// TollStatement is the result of one toll computation for one vehicle.
type TollStatement struct {
	VehicleID         int
	OwnerName         string
	PerStation        []StationCharge
	CrossingFee       float64
	OversizeSurcharge float64
	Total             float64
}

// TollEngine computes toll statements from ping history and station data.
type TollEngine struct {
	Pings    ports.PingRepository
	Stations ports.StationRepository
	Owners   ports.OwnerRepository
}

// StatementForVehicle computes the toll statement for one vehicle, optionally
// restricted to a single day given as an ISO date prefix ("2021-06-08").
//
// Each station charges at most once per computation: the first crossing's
// toll counts, further pings within the radius do not add to the fee. A
// missing canonical station aborts the whole computation.
func (e TollEngine) StatementForVehicle(ctx context.Context, vehicleID int, day string) (statement *TollStatement, err error) {
	defer obs.Time(ctx, "toll_statement")(&err)

	lookup, err := e.Owners.FindVehicle(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("toll statement for vehicle %d: %w", vehicleID, err)
	}

	pings, err := e.Pings.ListPingsForVehicle(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("toll statement for vehicle %d: %w", vehicleID, err)
	}

	if day != "" {
		pings = filterByDay(pings, day)
	}

	statement = &TollStatement{
		VehicleID:  vehicleID,
		OwnerName:  lookup.OwnerName,
		PerStation: make([]StationCharge, 0, len(CanonicalStationNames)),
	}

	for _, name := range CanonicalStationNames {
		station, err := e.Stations.GetStationByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("toll statement for vehicle %d: station %q: %w", vehicleID, name, err)
		}

		crossings := stationCrossings(pings, station)

		charge := StationCharge{Station: name, Crossings: crossings}
		if len(crossings) > 0 {
			charge.Crossed = true
			charge.Amount = crossings[0].Toll
			statement.CrossingFee += charge.Amount
		}
		statement.PerStation = append(statement.PerStation, charge)
	}

	statement.OversizeSurcharge = lookup.Vehicle.OversizeSurcharge()
	statement.Total = statement.CrossingFee + statement.OversizeSurcharge

	return statement, nil
}

// filterByDay keeps pings whose date text begins with the given day. Day
// granularity is a lexical prefix match on the ISO timestamp, not a
// timezone-aware range.
func filterByDay(pings []domain.Ping, day string) []domain.Ping {
	kept := []domain.Ping{}
	for _, p := range pings {
		if strings.HasPrefix(p.Date, day) {
			kept = append(kept, p)
		}
	}
	return kept
}

// stationCrossings maps the pings within the crossing radius of a station to
// crossing records, sorted by vehicle id ascending.
func stationCrossings(pings []domain.Ping, station domain.Station) []Crossing {
	near := WithinRadius(pings, station.Location, CrossingRadiusMeters)

	crossings := make([]Crossing, 0, len(near))
	for _, p := range near {
		crossings = append(crossings, Crossing{
			VehicleID: p.VehicleID,
			Location:  p.Location,
			Date:      p.Date,
			Toll:      station.TollPerCross,
		})
	}

	sort.SliceStable(crossings, func(i, j int) bool {
		return crossings[i].VehicleID < crossings[j].VehicleID
	})

	return crossings
}
