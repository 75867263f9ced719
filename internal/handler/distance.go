package handler

import (
	"context"
	"net/http"
	"strings"

	"geolocator/internal/models"

	"github.com/gin-gonic/gin"
)

type DistanceHandler struct {
	service DistanceService
}

// DistanceService interface for dependency injection
type DistanceService interface {
	Distance(ctx context.Context, from, to string) (*models.Distance, error)
}

func NewDistanceHandler(svc DistanceService) *DistanceHandler {
	return &DistanceHandler{service: svc}
}

// Distance handles GET /distance requests
//
//	@Summary	Great-circle distance between two places
//	@Produce	json
//	@Param		from	query		string	true	"first place"
//	@Param		to		query		string	true	"second place"
//	@Success	200		{object}	models.Distance
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/distance [get]
func (h *DistanceHandler) Distance(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'from' and 'to'"})
		return
	}

	distance, err := h.service.Distance(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, distance)
}
