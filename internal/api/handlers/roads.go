package handlers

import (
	"net/http"

	"toll-road-service/internal/api/dto"
	"toll-road-service/internal/ports"
)

// RoadHandler exposes road segment listing.
type RoadHandler struct {
	Repo ports.RoadRepository
}

func (h *RoadHandler) List(w http.ResponseWriter, r *http.Request) {
	segments, err := h.Repo.ListRoadSegments(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := make([]dto.RoadResponse, 0, len(segments))
	for _, s := range segments {
		res = append(res, dto.RoadResponse{
			Name:           s.Name,
			LongitudeStart: s.Start.Lon,
			LatitudeStart:  s.Start.Lat,
			LongitudeEnd:   s.End.Lon,
			LatitudeEnd:    s.End.Lat,
			Width:          s.Width,
		})
	}

	writeSuccess(w, r, res)
}
