package ports

import (
	"context"

	"toll-road-service/internal/domain"
)

// Port: a boundary for retrieving and appending vehicle owners.
type OwnerRepository interface {
	// Retrieve all owners in dataset order.
	ListOwners(ctx context.Context) ([]domain.Owner, error)
	// Append a new owner record and persist the rewritten collection.
	// The record is not validated here; that is the caller's responsibility.
	AppendOwner(ctx context.Context, owner domain.Owner) (domain.Owner, error)
	// Map each owner name to the ids of their vehicles, in registration order.
	VehiclesByOwner(ctx context.Context) (map[string][]int, error)
	// Resolve a vehicle id by scanning all owners linearly; the first match
	// wins when ids collide across owners. Returns domain.ErrNotFound when
	// no owner holds the id.
	FindVehicle(ctx context.Context, vehicleID int) (domain.VehicleLookup, error)
}
