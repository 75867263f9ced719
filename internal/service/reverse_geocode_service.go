package service

import (
	"context"
	"fmt"
	"strconv"

	"geolocator/internal/models"
)

// ReverseGeoCodeService turns coordinates into an address and records the lookup
type ReverseGeoCodeService struct {
	geocoder ReverseGeocoder
	repo     LocationRepository
	last     *LastResolved
}

// ReverseGeocoder interface for dependency injection
type ReverseGeocoder interface {
	Reverse(ctx context.Context, coord models.Coordinate) (*models.Place, error)
}

// NewReverseGeoCodeService creates a new reverse geo code service
func NewReverseGeoCodeService(geocoder ReverseGeocoder, repo LocationRepository, last *LastResolved) *ReverseGeoCodeService {
	if last == nil {
		last = &LastResolved{}
	}
	return &ReverseGeoCodeService{geocoder: geocoder, repo: repo, last: last}
}

// ReverseGeocode finds the address at the given coordinates
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Location, error) {
	coord := models.Coordinate{Latitude: lat, Longitude: lon}
	if err := coord.Validate(); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	place, err := s.geocoder.Reverse(ctx, coord)
	if err != nil {
		return nil, fmt.Errorf("service: failed to reverse geocode: %w", err)
	}

	// The record keeps the coordinates that were asked about.
	loc := &models.Location{
		Query:       strconv.FormatFloat(lat, 'f', -1, 64) + ", " + strconv.FormatFloat(lon, 'f', -1, 64),
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: place.DisplayName,
		Kind:        models.KindReverse,
	}
	err = s.repo.Append(ctx, loc)
	s.last.Set(loc)
	if err != nil {
		return loc, fmt.Errorf("service: %w: %w", models.ErrSaveFailed, err)
	}

	return loc, nil
}
