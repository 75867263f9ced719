// Package geocoder turns place names into coordinates (and back) through
// third-party services.
package geocoder

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"geolocator/internal/models"
)

// Geocoder is implemented by every geocoding provider.
type Geocoder interface {
	Name() string
	Geocode(ctx context.Context, query string) (*models.Place, error)
	Reverse(ctx context.Context, coord models.Coordinate) (*models.Place, error)
}

// Options configures a provider built by New.
type Options struct {
	Provider     string
	UserAgent    string
	NominatimURL string
	GoogleURL    string
	GoogleAPIKey string
	Timeout      time.Duration
}

// New returns the provider named by opts.Provider.
func New(opts Options) (Geocoder, error) {
	client := &http.Client{Timeout: opts.Timeout}

	switch strings.ToLower(opts.Provider) {
	case "", "nominatim":
		return NewNominatim(opts.NominatimURL, opts.UserAgent, client), nil
	case "google":
		if opts.GoogleAPIKey == "" {
			return nil, fmt.Errorf("geocoder: google provider requires GOOGLE_MAPS_API_KEY")
		}
		return NewGoogleMaps(opts.GoogleURL, opts.GoogleAPIKey, client), nil
	default:
		return nil, fmt.Errorf("geocoder: unknown provider %q", opts.Provider)
	}
}

// get performs a GET and maps transport failures and throttling onto the model errors.
// The caller closes the body.
func get(ctx context.Context, client *http.Client, reqURL, userAgent string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrLookupFailed, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		resp.Body.Close()
		return nil, models.ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status %d", models.ErrLookupFailed, resp.StatusCode)
	}
	return resp, nil
}
