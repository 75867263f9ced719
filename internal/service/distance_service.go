package service

import (
	"context"
	"errors"
	"fmt"

	"geolocator/internal/models"
)

// Locator resolves a place name to a recorded location. GeoCodeService implements it.
type Locator interface {
	Geocode(ctx context.Context, address string) (*models.Location, error)
}

// DistanceService measures the distance between two place names
type DistanceService struct {
	locator Locator
}

func NewDistanceService(locator Locator) *DistanceService {
	return &DistanceService{locator: locator}
}

// Distance geocodes both names and returns the great-circle distance between them.
// A failed save of either lookup does not prevent the answer.
func (s *DistanceService) Distance(ctx context.Context, from, to string) (*models.Distance, error) {
	a, err := s.resolve(ctx, from)
	if err != nil {
		return nil, err
	}
	b, err := s.resolve(ctx, to)
	if err != nil {
		return nil, err
	}

	return &models.Distance{
		From:       *a,
		To:         *b,
		Kilometers: a.Coordinate().DistanceKm(b.Coordinate()),
	}, nil
}

func (s *DistanceService) resolve(ctx context.Context, name string) (*models.Location, error) {
	loc, err := s.locator.Geocode(ctx, name)
	if err != nil && !(loc != nil && errors.Is(err, models.ErrSaveFailed)) {
		return nil, fmt.Errorf("service: distance: %w", err)
	}
	return loc, nil
}
