package handlers

import (
	"net/http"

	"toll-road-service/internal/api/dto"
	"toll-road-service/internal/ports"
)

// StationHandler exposes toll station listing.
type StationHandler struct {
	Repo ports.StationRepository
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	stations, err := h.Repo.ListStations(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := make([]dto.StationResponse, 0, len(stations))
	for _, s := range stations {
		res = append(res, dto.StationResponse{
			Name:         s.Name,
			Longitude:    s.Location.Lon,
			Latitude:     s.Location.Lat,
			TollPerCross: s.TollPerCross,
		})
	}

	writeSuccess(w, r, res)
}
