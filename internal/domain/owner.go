package domain

// VehicleClass is the closed set of vehicle categories the toll rules
// distinguish. Anything that is neither "small" nor "big" is ClassOther.
type VehicleClass int

const (
	ClassOther VehicleClass = iota
	ClassSmall
	ClassBig
)

const oversizeSurchargePerVolume = 300

// Vehicle is a single registered car embedded in exactly one Owner record.
// IDs are the cross-entity key used by pings and toll lookups; uniqueness
// across owners is not enforced by the dataset.
type Vehicle struct {
	ID         int
	Type       string
	Color      string
	Length     float64
	LoadVolume *float64
}

// Class maps the free-text type tag onto the closed variant.
func (v Vehicle) Class() VehicleClass {
	switch v.Type {
	case "small":
		return ClassSmall
	case "big":
		return ClassBig
	default:
		return ClassOther
	}
}

// OversizeSurcharge returns the load-proportional surcharge for big vehicles.
// It is charged once per toll computation, not per crossing.
func (v Vehicle) OversizeSurcharge() float64 {
	switch v.Class() {
	case ClassBig:
		if v.LoadVolume == nil {
			return 0
		}
		return *v.LoadVolume * oversizeSurchargePerVolume
	case ClassSmall, ClassOther:
		return 0
	}
	return 0
}

// Owner aggregates a person and the vehicles registered to them.
// Owner records are append-only; they are never updated or deleted.
type Owner struct {
	Name          string
	NationalCode  int64
	Age           int
	TotalTollPaid int64
	Cars          []Vehicle
}

// VehicleLookup is the result of resolving a vehicle id across all owners.
type VehicleLookup struct {
	OwnerName string
	Vehicle   Vehicle
}
