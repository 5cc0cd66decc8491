package api

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/cors"

	"toll-road-service/internal/api/handlers"
	"toll-road-service/internal/ports"
	"toll-road-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(
	owners ports.OwnerRepository,
	pings ports.PingRepository,
	roads ports.RoadRepository,
	stations ports.StationRepository,
) http.Handler {
	engine := services.TollEngine{Pings: pings, Stations: stations, Owners: owners}
	agg := services.AggregationService{Owners: owners, Pings: pings, Roads: roads, Toll: engine}

	ownerHandler := &handlers.OwnerHandler{
		Repo:    owners,
		Queries: services.OwnerQueryService{Owners: owners},
	}
	roadHandler := &handlers.RoadHandler{Repo: roads}
	stationHandler := &handlers.StationHandler{Repo: stations}
	pingHandler := &handlers.PingHandler{Repo: pings, Agg: agg}
	tollHandler := &handlers.TollHandler{Engine: engine, Agg: agg}

	router := chi.NewRouter()

	router.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
	}).Handler)
	router.Use(requestIDMiddleware)
	router.Use(loggingMiddleware)

	router.Get("/health", handlers.Health)

	router.Route("/api", func(r chi.Router) {
		r.Get("/allOwner", ownerHandler.List)
		r.Get("/carOlderOwner", ownerHandler.OlderOwnersCars)
		r.Get("/redOrBlueCar", ownerHandler.RedOrBlue)
		r.Post("/addOwner", ownerHandler.Add)

		r.Get("/allRoad", roadHandler.List)
		r.Get("/allStation", stationHandler.List)

		r.Get("/allRoadmap", pingHandler.List)
		r.Get("/bigCarInStreet", pingHandler.BigCarsOnNarrowRoads)
		r.Get("/carLastLocateNearStationOne", pingHandler.LatestNearStationOne)
		r.Get("/carAllTimeLocateNearStationOne", pingHandler.AllTimeNearStationOne)

		r.Get("/tollCarAtOneDay/{carId}", tollHandler.DayStatement)
		r.Get("/tollAllCars", tollHandler.AllOwners)
	})

	return router
}
