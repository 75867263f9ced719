package service

import (
	"context"
	"errors"
	"fmt"

	"geolocator/internal/mapview"
	"geolocator/internal/models"

	"github.com/rs/zerolog/log"
)

// MapRenderer interface for dependency injection
type MapRenderer interface {
	Render(center models.Coordinate, pois []models.POI) (*mapview.Document, error)
}

// POIFinder interface for dependency injection
type POIFinder interface {
	Nearby(ctx context.Context, c models.Coordinate, radius int) ([]models.POI, error)
}

// MapRequest selects the map center: an explicit coordinate wins over a query,
// and with neither the last resolved location is used.
type MapRequest struct {
	Query      string
	Coordinate *models.Coordinate
	WithPOIs   bool
}

// MapService renders "show on map" documents
type MapService struct {
	locator  Locator
	renderer MapRenderer
	pois     POIFinder
	radius   int
	last     *LastResolved
}

// NewMapService creates a map service. pois may be nil, in which case maps never carry POIs.
func NewMapService(locator Locator, renderer MapRenderer, pois POIFinder, radius int, last *LastResolved) *MapService {
	if last == nil {
		last = &LastResolved{}
	}
	return &MapService{locator: locator, renderer: renderer, pois: pois, radius: radius, last: last}
}

func (s *MapService) Render(ctx context.Context, req MapRequest) (*mapview.Document, error) {
	center, err := s.center(ctx, req)
	if err != nil {
		return nil, err
	}

	var pois []models.POI
	if req.WithPOIs && s.pois != nil {
		pois, err = s.pois.Nearby(ctx, center, s.radius)
		if err != nil {
			log.Warn().Err(err).Str("center", center.String()).Msg("rendering map without points of interest")
			pois = nil
		}
	}

	doc, err := s.renderer.Render(center, pois)
	if err != nil {
		return nil, fmt.Errorf("service: failed to render map: %w", err)
	}
	return doc, nil
}

func (s *MapService) center(ctx context.Context, req MapRequest) (models.Coordinate, error) {
	switch {
	case req.Coordinate != nil:
		if err := req.Coordinate.Validate(); err != nil {
			return models.Coordinate{}, fmt.Errorf("service: %w", err)
		}
		return *req.Coordinate, nil
	case req.Query != "":
		loc, err := s.locator.Geocode(ctx, req.Query)
		if err != nil && !(loc != nil && errors.Is(err, models.ErrSaveFailed)) {
			return models.Coordinate{}, fmt.Errorf("service: map: %w", err)
		}
		return loc.Coordinate(), nil
	}

	loc, ok := s.last.Get()
	if !ok {
		return models.Coordinate{}, fmt.Errorf("service: %w", models.ErrNothingToShow)
	}
	return loc.Coordinate(), nil
}
