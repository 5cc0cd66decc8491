package services

import (
	"context"
	"fmt"
	"sort"

	"toll-road-service/internal/domain"
	"toll-road-service/internal/ports"
)

// Owners older than this are covered by the older-owner listing.
const olderOwnerAge = 70

// OwnerQueryService answers the plain owner/vehicle listings that need no
// geospatial correlation.
type OwnerQueryService struct {
	Owners ports.OwnerRepository
}

// CarsOfOlderOwners returns the vehicle lists of owners older than 70, one
// list per matching owner.
func (s OwnerQueryService) CarsOfOlderOwners(ctx context.Context) ([][]domain.Vehicle, error) {
	owners, err := s.Owners.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("cars of older owners: %w", err)
	}

	cars := [][]domain.Vehicle{}
	for _, owner := range owners {
		if owner.Age > olderOwnerAge {
			cars = append(cars, owner.Cars)
		}
	}
	return cars, nil
}

// CarsByColor returns every red or blue vehicle across all owners, ordered
// by vehicle id.
func (s OwnerQueryService) CarsByColor(ctx context.Context) ([]domain.Vehicle, error) {
	owners, err := s.Owners.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("cars by color: %w", err)
	}

	cars := []domain.Vehicle{}
	for _, owner := range owners {
		for _, car := range owner.Cars {
			if car.Color == "blue" || car.Color == "red" {
				cars = append(cars, car)
			}
		}
	}

	sort.SliceStable(cars, func(i, j int) bool { return cars[i].ID < cars[j].ID })

	return cars, nil
}
