package service

import (
	"context"
	"fmt"
	"strings"

	"geolocator/internal/models"
)

// GeoCodeService resolves place names and records every successful lookup
type GeoCodeService struct {
	geocoder Geocoder
	repo     LocationRepository
	last     *LastResolved
}

// Geocoder interface for dependency injection
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*models.Place, error)
}

// LocationRepository interface for dependency injection
type LocationRepository interface {
	Append(ctx context.Context, loc *models.Location) error
}

// NewGeoCodeService creates a new geo code service
func NewGeoCodeService(geocoder Geocoder, repo LocationRepository, last *LastResolved) *GeoCodeService {
	if last == nil {
		last = &LastResolved{}
	}
	return &GeoCodeService{geocoder: geocoder, repo: repo, last: last}
}

// Geocode resolves address and appends one record to the store.
// When only the save fails, the resolved location is returned together with an ErrSaveFailed error.
func (s *GeoCodeService) Geocode(ctx context.Context, address string) (*models.Location, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("service: %w", models.ErrEmptyQuery)
	}

	place, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("service: failed to geocode %q: %w", address, err)
	}

	loc := &models.Location{
		Query:       address,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		DisplayName: place.DisplayName,
		Kind:        models.KindGeocode,
	}
	err = s.repo.Append(ctx, loc)
	s.last.Set(loc)
	if err != nil {
		return loc, fmt.Errorf("service: %w: %w", models.ErrSaveFailed, err)
	}

	return loc, nil
}
