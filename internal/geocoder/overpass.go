package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"geolocator/internal/models"
)

// Overpass finds named amenities around a point using the OSM Overpass API.
type Overpass struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

func NewOverpass(endpoint, userAgent string, client *http.Client) *Overpass {
	if client == nil {
		client = http.DefaultClient
	}
	return &Overpass{endpoint: endpoint, userAgent: userAgent, httpClient: client}
}

type overpassResponse struct {
	Elements []struct {
		Lat    *float64          `json:"lat"`
		Lon    *float64          `json:"lon"`
		Center *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

func overpassQuery(c models.Coordinate, radius int) string {
	around := fmt.Sprintf("around:%d,%f,%f", radius, c.Latitude, c.Longitude)
	return fmt.Sprintf(`[out:json];
(
  node["amenity"](%[1]s);
  way["amenity"](%[1]s);
  relation["amenity"](%[1]s);
);
out center;`, around)
}

// Nearby returns the named amenities within radius meters of c.
// Ways and relations are placed at their center.
func (o *Overpass) Nearby(ctx context.Context, c models.Coordinate, radius int) ([]models.POI, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("overpass: %w", err)
	}

	form := url.Values{}
	form.Set("data", overpassQuery(c, radius))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("overpass: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if o.userAgent != "" {
		req.Header.Set("User-Agent", o.userAgent)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass: %w: %v", models.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("overpass: %w", models.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass: %w: unexpected status %d", models.ErrLookupFailed, resp.StatusCode)
	}

	var data overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("overpass: %w: decoding response: %v", models.ErrLookupFailed, err)
	}

	pois := make([]models.POI, 0, len(data.Elements))
	for _, el := range data.Elements {
		name := el.Tags["name"]
		if name == "" {
			continue
		}

		var point models.Coordinate
		switch {
		case el.Lat != nil && el.Lon != nil:
			point = models.Coordinate{Latitude: *el.Lat, Longitude: *el.Lon}
		case el.Center != nil:
			point = models.Coordinate{Latitude: el.Center.Lat, Longitude: el.Center.Lon}
		default:
			continue
		}

		kind := el.Tags["amenity"]
		if kind == "" {
			kind = "unknown"
		}
		pois = append(pois, models.POI{Name: name, Type: kind, Coordinate: point})
	}

	return pois, nil
}
