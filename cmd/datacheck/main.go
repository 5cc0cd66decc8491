package main

import (
	"context"
	"path/filepath"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"toll-road-service/internal/adapters/repositories"
	"toll-road-service/internal/config"
	"toll-road-service/internal/services"
)

// datacheck loads the four JSON datasets, parses every coordinate, and
// verifies the canonical toll stations resolve. It exits non-zero when a
// dataset cannot be read.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (using environment variables)")
	}

	dataDir := config.Get("DATA_DIR", "jsons")
	ctx := context.Background()

	owners := repositories.NewJSONOwnerRepository(config.Get("OWNERS_PATH", filepath.Join(dataDir, "owners.json")))
	pings := repositories.NewJSONPingRepository(config.Get("ROADMAPS_PATH", filepath.Join(dataDir, "roadmaps.json")))
	roads := repositories.NewJSONRoadRepository(config.Get("ROADS_PATH", filepath.Join(dataDir, "roads.json")))
	stations := repositories.NewJSONStationRepository(config.Get("STATIONS_PATH", filepath.Join(dataDir, "stations.json")))

	ownerList, err := owners.ListOwners(ctx)
	if err != nil {
		log.Fatalf("owners dataset: %v", err)
	}
	vehicles := 0
	for _, o := range ownerList {
		vehicles += len(o.Cars)
	}
	log.Infof("owners: %d records, %d vehicles", len(ownerList), vehicles)

	pingList, err := pings.ListPings(ctx)
	if err != nil {
		log.Fatalf("roadmaps dataset: %v", err)
	}
	log.Infof("pings: %d parseable records", len(pingList))

	segments, err := roads.ListRoadSegments(ctx)
	if err != nil {
		log.Fatalf("roads dataset: %v", err)
	}
	log.Infof("roads: %d parseable segments", len(segments))

	stationList, err := stations.ListStations(ctx)
	if err != nil {
		log.Fatalf("stations dataset: %v", err)
	}
	log.Infof("stations: %d parseable records", len(stationList))

	for _, name := range services.CanonicalStationNames {
		if _, err := stations.GetStationByName(ctx, name); err != nil {
			log.Fatalf("canonical station %q: %v", name, err)
		}
	}
	log.Info("all canonical stations resolve")
}
