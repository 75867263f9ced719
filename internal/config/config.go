package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`

	GeocoderProvider  string        `mapstructure:"GEOCODER_PROVIDER"`
	GeocoderUserAgent string        `mapstructure:"GEOCODER_USER_AGENT"`
	NominatimURL      string        `mapstructure:"NOMINATIM_URL"`
	GoogleMapsURL     string        `mapstructure:"GOOGLE_MAPS_URL"`
	GoogleMapsAPIKey  string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	OverpassURL       string        `mapstructure:"OVERPASS_URL"`
	POIRadius         int           `mapstructure:"POI_RADIUS"`
	HTTPTimeout       time.Duration `mapstructure:"HTTP_TIMEOUT"`

	MapOutputDir string `mapstructure:"MAP_OUTPUT_DIR"`
	MapZoom      int    `mapstructure:"MAP_ZOOM"`
	MapTileURL   string `mapstructure:"MAP_TILE_URL"`

	HistoryLimit int    `mapstructure:"HISTORY_LIMIT"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	LogFormat    string `mapstructure:"LOG_FORMAT"`
}

var defaults = map[string]any{
	"DB_SOURCE":           "geolocation_history.db",
	"SERVER_ADDRESS":      "127.0.0.1:8080",
	"GEOCODER_PROVIDER":   "nominatim",
	"GEOCODER_USER_AGENT": "my_geolocation_app",
	"NOMINATIM_URL":       "https://nominatim.openstreetmap.org",
	"GOOGLE_MAPS_URL":     "https://maps.googleapis.com/maps/api/geocode/json",
	"GOOGLE_MAPS_API_KEY": "",
	"OVERPASS_URL":        "https://overpass-api.de/api/interpreter",
	"POI_RADIUS":          1000,
	"HTTP_TIMEOUT":        "10s",
	"MAP_OUTPUT_DIR":      ".",
	"MAP_ZOOM":            15,
	"MAP_TILE_URL":        "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
	"HISTORY_LIMIT":       5,
	"LOG_LEVEL":           "info",
	"LOG_FORMAT":          "console",
}

// LoadConfig reads app.env from path, then lets environment variables override it.
// A missing file is fine; every key has a default.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}
