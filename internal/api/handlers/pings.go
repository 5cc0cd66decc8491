package handlers

import (
	"net/http"

	"toll-road-service/internal/api/dto"
	"toll-road-service/internal/domain"
	"toll-road-service/internal/ports"
	"toll-road-service/internal/services"
)

// Small cars are reported near station one within this radius.
const nearStationRadiusMeters = 600

// PingHandler exposes ping listings and the proximity correlations built on
// them.
type PingHandler struct {
	Repo ports.PingRepository
	Agg  services.AggregationService
}

func (h *PingHandler) List(w http.ResponseWriter, r *http.Request) {
	pings, err := h.Repo.ListPings(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, pingResponses(pings))
}

// LatestNearStationOne lists small cars whose latest ping lies within 600 m
// of station one.
func (h *PingHandler) LatestNearStationOne(w http.ResponseWriter, r *http.Request) {
	h.nearStationOne(w, r, true)
}

// AllTimeNearStationOne lists every small-car ping within 600 m of station
// one, sorted by vehicle id.
func (h *PingHandler) AllTimeNearStationOne(w http.ResponseWriter, r *http.Request) {
	h.nearStationOne(w, r, false)
}

func (h *PingHandler) nearStationOne(w http.ResponseWriter, r *http.Request, latestOnly bool) {
	near, err := h.Agg.SmallVehiclesNearStation(r.Context(), services.StationOneName, nearStationRadiusMeters, latestOnly)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if len(near) == 0 {
		writeFailure(w, r, http.StatusNotFound, "No small cars found within 600 meters of the station")
		return
	}

	writeSuccess(w, r, pingResponses(near))
}

// BigCarsOnNarrowRoads lists big vehicles currently recorded on roads
// narrower than 20 meters.
func (h *PingHandler) BigCarsOnNarrowRoads(w http.ResponseWriter, r *http.Request) {
	sightings, err := h.Agg.BigVehiclesOnNarrowRoads(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := make([]dto.NarrowRoadSightingResponse, 0, len(sightings))
	for _, s := range sightings {
		res = append(res, dto.NarrowRoadSightingResponse{
			Car:       s.VehicleID,
			Longitude: s.Location.Lon,
			Latitude:  s.Location.Lat,
			Date:      s.Date,
			RoadName:  s.RoadName,
		})
	}

	writeSuccess(w, r, res)
}

func pingResponses(pings []domain.Ping) []dto.PingResponse {
	res := make([]dto.PingResponse, 0, len(pings))
	for _, p := range pings {
		res = append(res, dto.PingResponse{
			Car:       p.VehicleID,
			Longitude: p.Location.Lon,
			Latitude:  p.Location.Lat,
			Date:      p.Date,
		})
	}
	return res
}
