package main

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"toll-road-service/internal/adapters/repositories"
	"toll-road-service/internal/api"
	"toll-road-service/internal/config"
)

// main is the application composition root.
// It wires the JSON-file adapters behind the repository ports and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (using environment variables)")
	}

	log.SetFormatter(&log.JSONFormatter{})

	dataDir := config.Get("DATA_DIR", "jsons")
	port := config.Get("PORT", "2020")

	owners := repositories.NewJSONOwnerRepository(config.Get("OWNERS_PATH", filepath.Join(dataDir, "owners.json")))
	pings := repositories.NewJSONPingRepository(config.Get("ROADMAPS_PATH", filepath.Join(dataDir, "roadmaps.json")))
	roads := repositories.NewJSONRoadRepository(config.Get("ROADS_PATH", filepath.Join(dataDir, "roads.json")))
	stations := repositories.NewJSONStationRepository(config.Get("STATIONS_PATH", filepath.Join(dataDir, "stations.json")))

	router := api.NewRouter(owners, pings, roads, stations)

	// Write timeout leaves room for the all-owners rollup, which re-reads the
	// dataset once per vehicle per station.
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Infof("Server listening addr=:%s", port)
	log.Fatal(srv.ListenAndServe())
}
