package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"geolocator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleMaps_Geocode(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedErr error
	}{
		{
			name: "ok",
			body: `{"status":"OK","results":[{"geometry":{"location":{"lat":48.856614,"lng":2.3522219}},"formatted_address":"Paris, France"}]}`,
		},
		{
			name:        "zero results",
			body:        `{"status":"ZERO_RESULTS","results":[]}`,
			expectedErr: models.ErrNotFound,
		},
		{
			name:        "over query limit",
			body:        `{"status":"OVER_QUERY_LIMIT","results":[]}`,
			expectedErr: models.ErrRateLimited,
		},
		{
			name:        "request denied",
			body:        `{"status":"REQUEST_DENIED","error_message":"bad key"}`,
			expectedErr: models.ErrLookupFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Paris", r.URL.Query().Get("address"))
				assert.Equal(t, "secret", r.URL.Query().Get("key"))
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			g := NewGoogleMaps(srv.URL, "secret", srv.Client())

			place, err := g.Geocode(context.Background(), "Paris")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, 48.85, place.Latitude, 0.01)
			assert.InDelta(t, 2.35, place.Longitude, 0.01)
			assert.Equal(t, "google_maps", place.Provider)
		})
	}
}

func TestGoogleMaps_Reverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "48.858400,2.294500", r.URL.Query().Get("latlng"))
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":48.8584,"lng":2.2945}},"formatted_address":"Champ de Mars, Paris"}]}`))
	}))
	defer srv.Close()

	g := NewGoogleMaps(srv.URL, "secret", srv.Client())

	place, err := g.Reverse(context.Background(), models.Coordinate{Latitude: 48.8584, Longitude: 2.2945})
	require.NoError(t, err)
	assert.Equal(t, "Champ de Mars, Paris", place.DisplayName)
}

func TestNew(t *testing.T) {
	g, err := New(Options{Provider: "", NominatimURL: "http://localhost", Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "nominatim", g.Name())

	_, err = New(Options{Provider: "google"})
	assert.Error(t, err)

	g, err = New(Options{Provider: "Google", GoogleAPIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "google_maps", g.Name())

	_, err = New(Options{Provider: "bing"})
	assert.Error(t, err)
}
