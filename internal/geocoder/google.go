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

// GoogleMaps uses the Google Maps Geocoding API.
type GoogleMaps struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewGoogleMaps creates a new Google Maps geocoder.
func NewGoogleMaps(baseURL, apiKey string, client *http.Client) *GoogleMaps {
	if client == nil {
		client = http.DefaultClient
	}
	return &GoogleMaps{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: client,
	}
}

type googleMapsResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
	Status       string `json:"status"` // OK, ZERO_RESULTS, OVER_QUERY_LIMIT, ...
	ErrorMessage string `json:"error_message"`
}

func (g *GoogleMaps) Name() string { return "google_maps" }

func (g *GoogleMaps) Geocode(ctx context.Context, query string) (*models.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.ErrEmptyQuery
	}

	params := url.Values{}
	params.Set("address", query)
	return g.lookup(ctx, params, query)
}

func (g *GoogleMaps) Reverse(ctx context.Context, coord models.Coordinate) (*models.Place, error) {
	if err := coord.Validate(); err != nil {
		return nil, fmt.Errorf("google maps: %w", err)
	}

	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", coord.Latitude, coord.Longitude))
	return g.lookup(ctx, params, coord.String())
}

func (g *GoogleMaps) lookup(ctx context.Context, params url.Values, subject string) (*models.Place, error) {
	params.Set("key", g.apiKey)

	resp, err := get(ctx, g.httpClient, g.baseURL+"?"+params.Encode(), "")
	if err != nil {
		return nil, fmt.Errorf("google maps: %w", err)
	}
	defer resp.Body.Close()

	var gmResp googleMapsResponse
	if err := json.NewDecoder(resp.Body).Decode(&gmResp); err != nil {
		return nil, fmt.Errorf("google maps: %w: decoding response: %v", models.ErrLookupFailed, err)
	}

	switch gmResp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, fmt.Errorf("google maps: %w: %s", models.ErrNotFound, subject)
	case "OVER_QUERY_LIMIT", "OVER_DAILY_LIMIT":
		return nil, fmt.Errorf("google maps: %w", models.ErrRateLimited)
	default:
		return nil, fmt.Errorf("google maps: %w: status %s %s", models.ErrLookupFailed, gmResp.Status, gmResp.ErrorMessage)
	}

	if len(gmResp.Results) == 0 {
		return nil, fmt.Errorf("google maps: %w: %s", models.ErrNotFound, subject)
	}

	result := gmResp.Results[0]
	coord := models.Coordinate{
		Latitude:  result.Geometry.Location.Lat,
		Longitude: result.Geometry.Location.Lng,
	}
	if err := coord.Validate(); err != nil {
		return nil, fmt.Errorf("google maps: %w: %v", models.ErrLookupFailed, err)
	}

	return &models.Place{
		Coordinate:  coord,
		DisplayName: result.FormattedAddress,
		Provider:    g.Name(),
	}, nil
}
