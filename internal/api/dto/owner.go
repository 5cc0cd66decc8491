package dto

// Vehicle field names follow the stored dataset, including load_valume.

type VehicleResponse struct {
	ID         int      `json:"id"`
	Type       string   `json:"type"`
	Color      string   `json:"color"`
	Length     float64  `json:"length"`
	LoadVolume *float64 `json:"load_valume"`
}

type OwnerResponse struct {
	Name          string            `json:"name"`
	NationalCode  int64             `json:"national_code"`
	Age           int               `json:"age"`
	TotalTollPaid int64             `json:"total_toll_paid"`
	OwnerCar      []VehicleResponse `json:"ownerCar"`
}

type AddVehicleRequest struct {
	ID         int      `json:"id"`
	Type       string   `json:"type"`
	Color      string   `json:"color"`
	Length     *float64 `json:"length"`
	LoadVolume *float64 `json:"load_valume"`
}

type AddOwnerRequest struct {
	Name          string              `json:"name"`
	NationalCode  *int64              `json:"national_code"`
	Age           *int                `json:"age"`
	TotalTollPaid *int64              `json:"total_toll_paid"`
	OwnerCar      []AddVehicleRequest `json:"ownerCar"`
}

// FieldError reports a single failed validation rule.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Validate applies the owner intake rules and returns one error per failed
// field.
func (r AddOwnerRequest) Validate() []FieldError {
	errs := []FieldError{}

	if r.Name == "" {
		errs = append(errs, FieldError{Path: "name", Message: "must not be empty"})
	}
	if r.NationalCode == nil {
		errs = append(errs, FieldError{Path: "national_code", Message: "must be an integer"})
	}
	if r.Age == nil {
		errs = append(errs, FieldError{Path: "age", Message: "must be an integer"})
	}
	if r.TotalTollPaid == nil {
		errs = append(errs, FieldError{Path: "total_toll_paid", Message: "must be an integer"})
	}
	if r.OwnerCar == nil {
		errs = append(errs, FieldError{Path: "ownerCar", Message: "must be an array"})
	}

	for i, car := range r.OwnerCar {
		if car.Type == "" {
			errs = append(errs, FieldError{Path: field("ownerCar", i, "type"), Message: "must not be empty"})
		}
		if car.Color == "" {
			errs = append(errs, FieldError{Path: field("ownerCar", i, "color"), Message: "must not be empty"})
		}
		if car.Length == nil {
			errs = append(errs, FieldError{Path: field("ownerCar", i, "length"), Message: "must be numeric"})
		}
	}

	return errs
}
