package repositories

import (
	"context"
	"fmt"

	"toll-road-service/internal/domain"
)

// In-memory implementations of the repository ports, used by tests and
// tooling. They apply the same lookup semantics as the JSON adapters.

type MemoryPingRepository struct{ Pings []domain.Ping }

func (r *MemoryPingRepository) ListPings(ctx context.Context) ([]domain.Ping, error) {
	return append([]domain.Ping(nil), r.Pings...), nil
}

func (r *MemoryPingRepository) ListPingsForVehicle(ctx context.Context, vehicleID int) ([]domain.Ping, error) {
	history := []domain.Ping{}
	for _, p := range r.Pings {
		if p.VehicleID == vehicleID {
			history = append(history, p)
		}
	}
	return history, nil
}

type MemoryRoadRepository struct{ Segments []domain.RoadSegment }

func (r *MemoryRoadRepository) ListRoadSegments(ctx context.Context) ([]domain.RoadSegment, error) {
	return append([]domain.RoadSegment(nil), r.Segments...), nil
}

type MemoryStationRepository struct{ Stations []domain.Station }

func (r *MemoryStationRepository) ListStations(ctx context.Context) ([]domain.Station, error) {
	return append([]domain.Station(nil), r.Stations...), nil
}

func (r *MemoryStationRepository) GetStationByName(ctx context.Context, name string) (domain.Station, error) {
	for _, s := range r.Stations {
		if s.Name == name {
			return s, nil
		}
	}
	return domain.Station{}, fmt.Errorf("get station by name %q: %w", name, domain.ErrNotFound)
}

type MemoryOwnerRepository struct{ Owners []domain.Owner }

func (r *MemoryOwnerRepository) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	return append([]domain.Owner(nil), r.Owners...), nil
}

func (r *MemoryOwnerRepository) AppendOwner(ctx context.Context, owner domain.Owner) (domain.Owner, error) {
	r.Owners = append(r.Owners, owner)
	return owner, nil
}

func (r *MemoryOwnerRepository) VehiclesByOwner(ctx context.Context) (map[string][]int, error) {
	byOwner := make(map[string][]int, len(r.Owners))
	for _, owner := range r.Owners {
		ids := make([]int, 0, len(owner.Cars))
		for _, car := range owner.Cars {
			ids = append(ids, car.ID)
		}
		byOwner[owner.Name] = ids
	}
	return byOwner, nil
}

func (r *MemoryOwnerRepository) FindVehicle(ctx context.Context, vehicleID int) (domain.VehicleLookup, error) {
	for _, owner := range r.Owners {
		for _, car := range owner.Cars {
			if car.ID == vehicleID {
				return domain.VehicleLookup{OwnerName: owner.Name, Vehicle: car}, nil
			}
		}
	}
	return domain.VehicleLookup{}, fmt.Errorf("find vehicle %d: %w", vehicleID, domain.ErrNotFound)
}
