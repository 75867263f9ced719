package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"geolocator/internal/models"
)

// Nominatim queries an OpenStreetMap Nominatim instance.
type Nominatim struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatim creates a Nominatim geocoder. The usage policy requires an identifying user agent.
func NewNominatim(baseURL, userAgent string, client *http.Client) *Nominatim {
	if client == nil {
		client = http.DefaultClient
	}
	return &Nominatim{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: client,
	}
}

// nominatimResult mirrors the relevant parts of the jsonv2 search and reverse payloads.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

func (n *Nominatim) Name() string { return "nominatim" }

func (n *Nominatim) Geocode(ctx context.Context, query string) (*models.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.ErrEmptyQuery
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	resp, err := get(ctx, n.httpClient, n.baseURL+"/search?"+params.Encode(), n.userAgent)
	if err != nil {
		return nil, fmt.Errorf("nominatim: %w", err)
	}
	defer resp.Body.Close()

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("nominatim: %w: decoding response: %v", models.ErrLookupFailed, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("nominatim: %w: %s", models.ErrNotFound, query)
	}

	return n.toPlace(results[0])
}

func (n *Nominatim) Reverse(ctx context.Context, coord models.Coordinate) (*models.Place, error) {
	if err := coord.Validate(); err != nil {
		return nil, fmt.Errorf("nominatim: %w", err)
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	params.Set("format", "jsonv2")

	resp, err := get(ctx, n.httpClient, n.baseURL+"/reverse?"+params.Encode(), n.userAgent)
	if err != nil {
		return nil, fmt.Errorf("nominatim: %w", err)
	}
	defer resp.Body.Close()

	var result nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("nominatim: %w: decoding response: %v", models.ErrLookupFailed, err)
	}
	// Nominatim answers 200 with {"error": "Unable to geocode"} for open sea and the like.
	if result.Error != "" || result.DisplayName == "" {
		return nil, fmt.Errorf("nominatim: %w: %s", models.ErrNotFound, coord)
	}

	return n.toPlace(result)
}

func (n *Nominatim) toPlace(r nominatimResult) (*models.Place, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim: %w: invalid latitude %q", models.ErrLookupFailed, r.Lat)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim: %w: invalid longitude %q", models.ErrLookupFailed, r.Lon)
	}

	coord := models.Coordinate{Latitude: lat, Longitude: lon}
	if err := coord.Validate(); err != nil {
		return nil, fmt.Errorf("nominatim: %w: %v", models.ErrLookupFailed, err)
	}

	return &models.Place{
		Coordinate:  coord,
		DisplayName: r.DisplayName,
		Provider:    n.Name(),
	}, nil
}
