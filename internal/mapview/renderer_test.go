package mapview

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"geolocator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "maps")
	r := NewRenderer(dir, 0, "")
	paris := models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}

	doc, err := r.Render(paris, nil)
	require.NoError(t, err)

	assert.Equal(t, paris, doc.Center)
	assert.Equal(t, "map_48.85660_2.35220.html", filepath.Base(doc.Path))

	content, err := os.ReadFile(doc.Path)
	require.NoError(t, err)

	html := string(content)
	assert.Contains(t, html, "48.8566")
	assert.Contains(t, html, "2.3522")
	assert.Contains(t, html, "Selected Location")
	assert.Regexp(t, `setView\(center,\s*15\s*\)`, html)
	assert.Contains(t, html, "tile.openstreetmap.org")
}

func TestRenderer_WriteWithPOIs(t *testing.T) {
	r := NewRenderer(t.TempDir(), 12, "https://tiles.example/{z}/{x}/{y}.png")
	center := models.Coordinate{Latitude: -33.8688, Longitude: 151.2093}
	pois := []models.POI{
		{Name: "Café <Opera>", Type: "cafe", Coordinate: models.Coordinate{Latitude: -33.857, Longitude: 151.215}},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, center, pois))

	html := buf.String()
	assert.Contains(t, html, "-33.8688")
	assert.Contains(t, html, "151.2093")
	assert.Regexp(t, `setView\(center,\s*12\s*\)`, html)
	assert.Contains(t, html, "tiles.example")
	assert.Contains(t, html, "-33.857")
	assert.NotContains(t, html, "Café <Opera>")
}

func TestRenderer_POILabelsAreText(t *testing.T) {
	r := NewRenderer(t.TempDir(), 0, "")
	center := models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}
	pois := []models.POI{
		{Name: "<img src=x onerror=alert(document.domain)>", Type: "cafe", Coordinate: models.Coordinate{Latitude: 48.857, Longitude: 2.353}},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, center, pois))

	html := buf.String()
	assert.NotContains(t, html, "<img src=x")
	// POI fields reach the popup only through textContent, never as an HTML string.
	assert.NotRegexp(t, `bindPopup\([^)]*\bp\.`, html)
	assert.NotRegexp(t, `innerHTML`, html)
	assert.Regexp(t, `label\.textContent\s*=\s*p\.name`, html)
	assert.Regexp(t, `bindPopup\(label\)`, html)
}

func TestRenderer_RenderReplacesDocument(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, 0, "")
	paris := models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}

	_, err := r.Render(paris, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := r.Render(paris, nil)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			content, err := os.ReadFile(filepath.Join(dir, "map_48.85660_2.35220.html"))
			if assert.NoError(t, err) {
				assert.Contains(t, string(content), "</html>")
			}
		}()
	}
	wg.Wait()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary files are left behind")
	assert.Equal(t, "map_48.85660_2.35220.html", entries[0].Name())
}

func TestRenderer_InvalidCoordinate(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, 0, "")

	_, err := r.Render(models.Coordinate{Latitude: 120, Longitude: 0}, nil)
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
