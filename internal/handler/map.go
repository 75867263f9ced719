package handler

import (
	"context"
	"net/http"
	"strconv"

	"geolocator/internal/mapview"
	"geolocator/internal/models"
	"geolocator/internal/service"

	"github.com/gin-gonic/gin"
)

type MapHandler struct {
	service MapService
}

// MapService interface for dependency injection
type MapService interface {
	Render(ctx context.Context, req service.MapRequest) (*mapview.Document, error)
}

func NewMapHandler(svc MapService) *MapHandler {
	return &MapHandler{service: svc}
}

// Map handles GET /map requests: it renders the document and serves it.
// Without q or lat/lon the last resolved location is shown.
//
//	@Summary	Interactive map document
//	@Produce	html
//	@Param		q		query	string	false	"place name"
//	@Param		lat		query	number	false	"latitude"
//	@Param		lon		query	number	false	"longitude"
//	@Param		pois	query	bool	false	"include nearby points of interest"
//	@Success	200
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/map [get]
func (h *MapHandler) Map(c *gin.Context) {
	req := service.MapRequest{Query: c.Query("q")}

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" || lonStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}
		req.Coordinate = &models.Coordinate{Latitude: lat, Longitude: lon}
	}

	if raw := c.Query("pois"); raw != "" {
		withPOIs, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pois flag"})
			return
		}
		req.WithPOIs = withPOIs
	}

	doc, err := h.service.Render(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("X-Map-Document", doc.Path)
	c.File(doc.Path)
}
