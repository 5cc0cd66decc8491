package handlers

import (
	"net/http"

	"toll-road-service/internal/api/dto"
	"toll-road-service/internal/domain"
	"toll-road-service/internal/ports"
	"toll-road-service/internal/services"
)

// OwnerHandler exposes owner listing, intake, and plain vehicle queries.
type OwnerHandler struct {
	Repo    ports.OwnerRepository
	Queries services.OwnerQueryService
}

func (h *OwnerHandler) List(w http.ResponseWriter, r *http.Request) {
	owners, err := h.Repo.ListOwners(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := make([]dto.OwnerResponse, 0, len(owners))
	for _, o := range owners {
		res = append(res, ownerResponse(o))
	}

	writeSuccess(w, r, res)
}

// Add validates the intake payload and appends the new owner record.
func (h *OwnerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddOwnerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		writeEnvelope(w, r, http.StatusBadRequest, fieldErrs, "Validation failed")
		return
	}

	owner := ownerFromRequest(req)

	stored, err := h.Repo.AppendOwner(r.Context(), owner)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccessMessage(w, r, ownerResponse(stored), "Added New Owner Successfully")
}

// OlderOwnersCars lists the vehicles of owners older than 70, one list per
// owner.
func (h *OwnerHandler) OlderOwnersCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Queries.CarsOfOlderOwners(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := make([][]dto.VehicleResponse, 0, len(cars))
	for _, owned := range cars {
		res = append(res, vehicleResponses(owned))
	}

	writeSuccessMessage(w, r, res, "Successfully retrieved the list of cars owned by older owners")
}

// RedOrBlue lists every red or blue vehicle ordered by id.
func (h *OwnerHandler) RedOrBlue(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Queries.CarsByColor(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccessMessage(w, r, vehicleResponses(cars), "Successfully retrieved cars by color")
}

func ownerResponse(o domain.Owner) dto.OwnerResponse {
	return dto.OwnerResponse{
		Name:          o.Name,
		NationalCode:  o.NationalCode,
		Age:           o.Age,
		TotalTollPaid: o.TotalTollPaid,
		OwnerCar:      vehicleResponses(o.Cars),
	}
}

func vehicleResponses(cars []domain.Vehicle) []dto.VehicleResponse {
	res := make([]dto.VehicleResponse, 0, len(cars))
	for _, car := range cars {
		res = append(res, dto.VehicleResponse{
			ID:         car.ID,
			Type:       car.Type,
			Color:      car.Color,
			Length:     car.Length,
			LoadVolume: car.LoadVolume,
		})
	}
	return res
}

func ownerFromRequest(req dto.AddOwnerRequest) domain.Owner {
	owner := domain.Owner{
		Name:          req.Name,
		NationalCode:  *req.NationalCode,
		Age:           *req.Age,
		TotalTollPaid: *req.TotalTollPaid,
		Cars:          make([]domain.Vehicle, 0, len(req.OwnerCar)),
	}
	for _, car := range req.OwnerCar {
		owner.Cars = append(owner.Cars, domain.Vehicle{
			ID:         car.ID,
			Type:       car.Type,
			Color:      car.Color,
			Length:     *car.Length,
			LoadVolume: car.LoadVolume,
		})
	}
	return owner
}
