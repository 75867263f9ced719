package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"geolocator/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGeoCodeService is a mock implementation of the GeoCodeService interface
type MockGeoCodeService struct {
	mock.Mock
}

func (m *MockGeoCodeService) Geocode(ctx context.Context, address string) (*models.Location, error) {
	args := m.Called(ctx, address)
	loc, _ := args.Get(0).(*models.Location)
	return loc, args.Error(1)
}

var paris = &models.Location{
	ID:          7,
	Query:       "Paris",
	Latitude:    48.8566,
	Longitude:   2.3522,
	DisplayName: "Paris, France",
	Kind:        models.KindGeocode,
}

var parisJSON = map[string]interface{}{
	"id":           float64(7),
	"query":        "Paris",
	"latitude":     48.8566,
	"longitude":    2.3522,
	"display_name": "Paris, France",
	"kind":         "geocode",
	"created_at":   "0001-01-01T00:00:00Z",
}

func TestGeoCodeHandler_Geocode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	withWarning := map[string]interface{}{}
	for k, v := range parisJSON {
		withWarning[k] = v
	}
	withWarning["warning"] = "location found but could not be saved to history"

	tests := []struct {
		name           string
		query          string
		mockLocation   *models.Location
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameter",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameter 'q'"},
		},
		{
			name:           "successful geocoding",
			query:          "Paris",
			mockLocation:   paris,
			expectedStatus: http.StatusOK,
			expectedBody:   parisJSON,
		},
		{
			name:           "resolved but not saved",
			query:          "Paris",
			mockLocation:   paris,
			mockError:      models.ErrSaveFailed,
			expectedStatus: http.StatusOK,
			expectedBody:   withWarning,
		},
		{
			name:           "not found",
			query:          "qwzxqwzx",
			mockError:      models.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]interface{}{"error": "location not found"},
		},
		{
			name:           "rate limited",
			query:          "Paris",
			mockError:      models.ErrRateLimited,
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   map[string]interface{}{"error": "geocoding service is rate limiting requests, try again later"},
		},
		{
			name:           "service unreachable",
			query:          "Paris",
			mockError:      models.ErrLookupFailed,
			expectedStatus: http.StatusBadGateway,
			expectedBody:   map[string]interface{}{"error": "geocoding service unavailable"},
		},
		{
			name:           "unexpected error",
			query:          "Paris",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockGeoCodeService)
			handler := NewGeoCodeHandler(mockSvc)

			if tt.query != "" {
				mockSvc.On("Geocode", mock.Anything, tt.query).Return(tt.mockLocation, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/geocode", nil)
			if tt.query != "" {
				q := req.URL.Query()
				q.Add("q", tt.query)
				req.URL.RawQuery = q.Encode()
			}
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.GeoCode(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}
