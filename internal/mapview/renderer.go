// Package mapview renders standalone interactive map documents.
package mapview

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"geolocator/internal/models"
)

//go:embed templates/map.html.tmpl
var templatesFS embed.FS

var mapTemplate = template.Must(template.ParseFS(templatesFS, "templates/map.html.tmpl"))

const (
	DefaultZoom    = 15
	DefaultTileURL = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
)

// Document is a rendered map written to disk.
type Document struct {
	Path   string            `json:"path"`
	Center models.Coordinate `json:"center"`
}

// Renderer produces Leaflet HTML documents centered on a coordinate.
type Renderer struct {
	outputDir string
	zoom      int
	tileURL   string
}

// NewRenderer creates a renderer writing into outputDir. Zero values fall back to the defaults.
func NewRenderer(outputDir string, zoom int, tileURL string) *Renderer {
	if outputDir == "" {
		outputDir = "."
	}
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	if tileURL == "" {
		tileURL = DefaultTileURL
	}
	return &Renderer{outputDir: outputDir, zoom: zoom, tileURL: tileURL}
}

type mapData struct {
	Title   string
	Center  models.Coordinate
	Zoom    int
	TileURL string
	POIs    []models.POI
}

// Write renders the document for center and pois to w.
func (r *Renderer) Write(w io.Writer, center models.Coordinate, pois []models.POI) error {
	if err := center.Validate(); err != nil {
		return fmt.Errorf("mapview: %w", err)
	}
	if pois == nil {
		pois = []models.POI{}
	}

	data := mapData{
		Title:   fmt.Sprintf("Map of %s", center),
		Center:  center,
		Zoom:    r.zoom,
		TileURL: r.tileURL,
		POIs:    pois,
	}
	if err := mapTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("mapview: executing template: %w", err)
	}
	return nil
}

// Render writes the document to the output directory and returns where it went.
// Rendering the same center twice overwrites the previous file.
func (r *Renderer) Render(center models.Coordinate, pois []models.POI) (*Document, error) {
	if err := center.Validate(); err != nil {
		return nil, fmt.Errorf("mapview: %w", err)
	}
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("mapview: creating output directory: %w", err)
	}

	path := filepath.Join(r.outputDir, fmt.Sprintf("map_%.5f_%.5f.html", center.Latitude, center.Longitude))

	// Readers of path see either the previous document or the new one, never a partial write.
	f, err := os.CreateTemp(r.outputDir, ".map-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("mapview: creating document: %w", err)
	}
	tmp := f.Name()

	if err := r.Write(f, center, pois); err != nil {
		f.Close()
		os.Remove(tmp)
		return nil, err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(tmp)
		return nil, fmt.Errorf("mapview: setting document mode: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("mapview: closing document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("mapview: moving document into place: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Document{Path: abs, Center: center}, nil
}
