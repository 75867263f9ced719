// Package app wires configuration, storage, geocoding and rendering into the
// services shared by the HTTP server and the command line.
package app

import (
	"context"
	"fmt"
	"net/http"

	"geolocator/internal/config"
	"geolocator/internal/geocoder"
	"geolocator/internal/mapview"
	"geolocator/internal/repository"
	"geolocator/internal/service"

	"github.com/rs/zerolog/log"
)

type App struct {
	Config config.Config
	Store  repository.Store

	Geocode  *service.GeoCodeService
	Reverse  *service.ReverseGeoCodeService
	Distance *service.DistanceService
	Map      *service.MapService
	History  *service.HistoryService

	last *service.LastResolved
}

// New opens the store and builds every service from cfg. Close releases the store.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	store, err := repository.Open(ctx, cfg.DBSource)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	geo, err := geocoder.New(geocoder.Options{
		Provider:     cfg.GeocoderProvider,
		UserAgent:    cfg.GeocoderUserAgent,
		NominatimURL: cfg.NominatimURL,
		GoogleURL:    cfg.GoogleMapsURL,
		GoogleAPIKey: cfg.GoogleMapsAPIKey,
		Timeout:      cfg.HTTPTimeout,
	})
	if err != nil {
		store.Close()
		return nil, err
	}

	pois := geocoder.NewOverpass(cfg.OverpassURL, cfg.GeocoderUserAgent, &http.Client{Timeout: cfg.HTTPTimeout})
	renderer := mapview.NewRenderer(cfg.MapOutputDir, cfg.MapZoom, cfg.MapTileURL)

	a := Build(cfg, store, geo, pois, renderer)
	a.restoreLast(ctx)
	return a, nil
}

// Build assembles the services from already constructed parts.
func Build(cfg config.Config, store repository.Store, geo geocoder.Geocoder, pois service.POIFinder, renderer service.MapRenderer) *App {
	last := &service.LastResolved{}
	geocode := service.NewGeoCodeService(geo, store, last)

	log.Debug().
		Str("provider", geo.Name()).
		Str("db", cfg.DBSource).
		Str("map_dir", cfg.MapOutputDir).
		Msg("application wired")

	return &App{
		Config:   cfg,
		Store:    store,
		Geocode:  geocode,
		Reverse:  service.NewReverseGeoCodeService(geo, store, last),
		Distance: service.NewDistanceService(geocode),
		Map:      service.NewMapService(geocode, renderer, pois, cfg.POIRadius, last),
		History:  service.NewHistoryService(store),
		last:     last,
	}
}

// restoreLast seeds the last resolved location from the newest history record,
// so a map can be shown right after a restart.
func (a *App) restoreLast(ctx context.Context) {
	recent, err := a.Store.ListRecent(ctx, 1)
	if err != nil {
		log.Warn().Err(err).Msg("could not restore last resolved location")
		return
	}
	if len(recent) == 1 {
		a.last.Set(&recent[0])
	}
}

func (a *App) Close() error {
	return a.Store.Close()
}
