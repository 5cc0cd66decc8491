package repositories

import (
	"context"
	"fmt"

	"toll-road-service/internal/domain"
)

// vehicleRecord is the stored shape of one registered car. The load_valume
// field name matches the stored dataset.
type vehicleRecord struct {
	ID         int      `json:"id"`
	Type       string   `json:"type"`
	Color      string   `json:"color"`
	Length     float64  `json:"length"`
	LoadVolume *float64 `json:"load_valume"`
}

// ownerRecord is the stored shape of a single owner entry.
type ownerRecord struct {
	Name          string          `json:"name"`
	NationalCode  int64           `json:"national_code"`
	Age           int             `json:"age"`
	TotalTollPaid int64           `json:"total_toll_paid"`
	OwnerCar      []vehicleRecord `json:"ownerCar"`
}

// JSON-file-backed implementation of the OwnerRepository port.
type JSONOwnerRepository struct{ Path string }

func NewJSONOwnerRepository(path string) *JSONOwnerRepository {
	return &JSONOwnerRepository{Path: path}
}

func (rec ownerRecord) toDomain() domain.Owner {
	owner := domain.Owner{
		Name:          rec.Name,
		NationalCode:  rec.NationalCode,
		Age:           rec.Age,
		TotalTollPaid: rec.TotalTollPaid,
		Cars:          make([]domain.Vehicle, 0, len(rec.OwnerCar)),
	}
	for _, car := range rec.OwnerCar {
		owner.Cars = append(owner.Cars, domain.Vehicle{
			ID:         car.ID,
			Type:       car.Type,
			Color:      car.Color,
			Length:     car.Length,
			LoadVolume: car.LoadVolume,
		})
	}
	return owner
}

func recordFromDomain(owner domain.Owner) ownerRecord {
	rec := ownerRecord{
		Name:          owner.Name,
		NationalCode:  owner.NationalCode,
		Age:           owner.Age,
		TotalTollPaid: owner.TotalTollPaid,
		OwnerCar:      make([]vehicleRecord, 0, len(owner.Cars)),
	}
	for _, car := range owner.Cars {
		rec.OwnerCar = append(rec.OwnerCar, vehicleRecord{
			ID:         car.ID,
			Type:       car.Type,
			Color:      car.Color,
			Length:     car.Length,
			LoadVolume: car.LoadVolume,
		})
	}
	return rec
}

// ListOwners returns all owners in dataset order.
func (r *JSONOwnerRepository) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	var records []ownerRecord
	if err := readCollection(r.Path, &records); err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}

	owners := make([]domain.Owner, 0, len(records))
	for _, rec := range records {
		owners = append(owners, rec.toDomain())
	}

	return owners, nil
}

// AppendOwner reads the whole collection, appends the new record, and
// rewrites the file. Two concurrent appends race; the last writer wins and
// the earlier append is lost.
func (r *JSONOwnerRepository) AppendOwner(ctx context.Context, owner domain.Owner) (domain.Owner, error) {
	var records []ownerRecord
	if err := readCollection(r.Path, &records); err != nil {
		return domain.Owner{}, fmt.Errorf("append owner: %w", err)
	}

	records = append(records, recordFromDomain(owner))

	if err := writeCollection(r.Path, records); err != nil {
		return domain.Owner{}, fmt.Errorf("append owner: %w", err)
	}

	return owner, nil
}

// VehiclesByOwner maps each owner name to their vehicle ids in registration
// order.
func (r *JSONOwnerRepository) VehiclesByOwner(ctx context.Context) (map[string][]int, error) {
	owners, err := r.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("vehicles by owner: %w", err)
	}

	byOwner := make(map[string][]int, len(owners))
	for _, owner := range owners {
		ids := make([]int, 0, len(owner.Cars))
		for _, car := range owner.Cars {
			ids = append(ids, car.ID)
		}
		byOwner[owner.Name] = ids
	}

	return byOwner, nil
}

// FindVehicle scans all owners linearly and returns the first vehicle whose
// id matches. Duplicate ids across owners resolve to the first-listed owner.
func (r *JSONOwnerRepository) FindVehicle(ctx context.Context, vehicleID int) (domain.VehicleLookup, error) {
	owners, err := r.ListOwners(ctx)
	if err != nil {
		return domain.VehicleLookup{}, fmt.Errorf("find vehicle %d: %w", vehicleID, err)
	}

	for _, owner := range owners {
		for _, car := range owner.Cars {
			if car.ID == vehicleID {
				return domain.VehicleLookup{OwnerName: owner.Name, Vehicle: car}, nil
			}
		}
	}

	return domain.VehicleLookup{}, fmt.Errorf("find vehicle %d: %w", vehicleID, domain.ErrNotFound)
}
