package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"geolocator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatim_Geocode(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		status      int
		body        string
		expected    *models.Place
		expectedErr error
	}{
		{
			name:   "known place",
			query:  "Paris",
			status: http.StatusOK,
			body:   `[{"lat":"48.8588897","lon":"2.3200410","display_name":"Paris, Île-de-France, France"}]`,
			expected: &models.Place{
				Coordinate:  models.Coordinate{Latitude: 48.8588897, Longitude: 2.3200410},
				DisplayName: "Paris, Île-de-France, France",
				Provider:    "nominatim",
			},
		},
		{
			name:        "no match",
			query:       "qwzxqwzxqwzx",
			status:      http.StatusOK,
			body:        `[]`,
			expectedErr: models.ErrNotFound,
		},
		{
			name:        "empty query",
			query:       "   ",
			expectedErr: models.ErrNotFound,
		},
		{
			name:        "rate limited",
			query:       "Paris",
			status:      http.StatusTooManyRequests,
			expectedErr: models.ErrRateLimited,
		},
		{
			name:        "server error",
			query:       "Paris",
			status:      http.StatusInternalServerError,
			expectedErr: models.ErrLookupFailed,
		},
		{
			name:        "garbage payload",
			query:       "Paris",
			status:      http.StatusOK,
			body:        `<html>`,
			expectedErr: models.ErrLookupFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, "/search", r.URL.Path)
				assert.Equal(t, tt.query, r.URL.Query().Get("q"))
				assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
				assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			g := NewNominatim(srv.URL, "test-agent", srv.Client())

			place, err := g.Geocode(context.Background(), tt.query)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, place)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, place)
			}

			if tt.status == 0 {
				assert.Zero(t, calls, "empty query must not reach the service")
			}
		})
	}
}

func TestNominatim_Reverse(t *testing.T) {
	tests := []struct {
		name        string
		coord       models.Coordinate
		body        string
		expectedErr error
		expected    string
	}{
		{
			name:     "address found",
			coord:    models.Coordinate{Latitude: 48.8584, Longitude: 2.2945},
			body:     `{"lat":"48.8582","lon":"2.2945","display_name":"Tour Eiffel, Paris"}`,
			expected: "Tour Eiffel, Paris",
		},
		{
			name:        "unable to geocode",
			coord:       models.Coordinate{Latitude: 0, Longitude: -30},
			body:        `{"error":"Unable to geocode"}`,
			expectedErr: models.ErrNotFound,
		},
		{
			name:        "invalid coordinate",
			coord:       models.Coordinate{Latitude: 91, Longitude: 0},
			expectedErr: models.ErrInvalidCoordinate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/reverse", r.URL.Path)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			g := NewNominatim(srv.URL+"/", "test-agent", srv.Client())

			place, err := g.Reverse(context.Background(), tt.coord)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, place.DisplayName)
		})
	}
}

func TestNominatim_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	g := NewNominatim(srv.URL, "test-agent", nil)

	_, err := g.Geocode(context.Background(), "Paris")
	assert.ErrorIs(t, err, models.ErrLookupFailed)
}
