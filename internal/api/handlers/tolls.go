package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"toll-road-service/internal/api/dto"
	"toll-road-service/internal/services"
)

// The dataset covers this single day; it is the default for day statements.
const defaultTollDay = "2021-06-08"

// TollHandler exposes toll computations.
type TollHandler struct {
	Engine services.TollEngine
	Agg    services.AggregationService
}

// DayStatement computes the toll statement of one vehicle for one day. The
// day defaults to the dataset's date and can be overridden with ?date=.
func (h *TollHandler) DayStatement(w http.ResponseWriter, r *http.Request) {
	carID, err := strconv.Atoi(chi.URLParam(r, "carId"))
	if err != nil {
		writeFailure(w, r, http.StatusBadRequest, "carId must be an integer")
		return
	}

	day := r.URL.Query().Get("date")
	if day == "" {
		day = defaultTollDay
	}

	statement, err := h.Engine.StatementForVehicle(r.Context(), carID, day)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.DayTollResponse{
		OversizeSurcharge: statement.OversizeSurcharge,
		Total:             statement.Total,
	}
	amounts := []*float64{&res.StationOne, &res.StationTwo, &res.StationThree, &res.StationFour}
	for i, charge := range statement.PerStation {
		if i < len(amounts) {
			*amounts[i] = charge.Amount
		}
	}

	writeSuccess(w, r, res)
}

// AllOwners rolls tolls up per owner across every registered vehicle.
func (h *TollHandler) AllOwners(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Agg.TollForAllOwners(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := make(map[string]dto.OwnerTollResponse, len(summary))
	for ownerName, owned := range summary {
		detail := make([]dto.VehicleTollResponse, 0, len(owned.Detail))
		for _, v := range owned.Detail {
			detail = append(detail, dto.VehicleTollResponse{
				CarID:      v.VehicleID,
				Toll:       v.CrossingFee,
				TollBigCar: v.OversizeSurcharge,
			})
		}
		res[ownerName] = dto.OwnerTollResponse{TotalToll: owned.TotalToll, Detail: detail}
	}

	writeSuccess(w, r, res)
}
