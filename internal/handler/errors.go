package handler

import (
	"errors"
	"net/http"

	"geolocator/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors onto status codes. Unexpected errors are logged, never echoed.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidCoordinate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
	case errors.Is(err, models.ErrNothingToShow):
		c.JSON(http.StatusNotFound, gin.H{"error": "no location to show, search for a place first"})
	case errors.Is(err, models.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "geocoding service is rate limiting requests, try again later"})
	case errors.Is(err, models.ErrLookupFailed):
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding service unavailable"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// LocationResponse is a resolved location, with a warning when it could not be recorded
type LocationResponse struct {
	*models.Location
	Warning string `json:"warning,omitempty"`
}

// respondLocation writes a resolved location. A save failure still answers 200 since the lookup itself worked.
func respondLocation(c *gin.Context, loc *models.Location, err error) {
	if err != nil && !(loc != nil && errors.Is(err, models.ErrSaveFailed)) {
		respondError(c, err)
		return
	}

	resp := LocationResponse{Location: loc}
	if err != nil {
		log.Error().Err(err).Str("query", loc.Query).Msg("failed to record lookup")
		resp.Warning = "location found but could not be saved to history"
	}
	c.JSON(http.StatusOK, resp)
}
