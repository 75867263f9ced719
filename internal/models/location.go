package models

import "time"

// Record kinds stored alongside each lookup.
const (
	KindGeocode = "geocode"
	KindReverse = "reverse"
)

// Location is one recorded lookup: the text that was searched for and the point it resolved to.
type Location struct {
	ID          int64     `json:"id"`
	Query       string    `json:"query"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	DisplayName string    `json:"display_name"`
	Kind        string    `json:"kind"`
	CreatedAt   time.Time `json:"created_at"`
}

// Coordinate returns the point the location resolved to.
func (l Location) Coordinate() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// Place is a single geocoder answer.
type Place struct {
	Coordinate
	DisplayName string `json:"display_name"`
	Provider    string `json:"provider"`
}

// POI is a named amenity near a point.
type POI struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Coordinate
}

// Distance is the great-circle distance between two resolved locations.
type Distance struct {
	From       Location `json:"from"`
	To         Location `json:"to"`
	Kilometers float64  `json:"kilometers"`
}
