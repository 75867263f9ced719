package handler

import (
	"context"
	"net/http"
	"strconv"

	"geolocator/internal/models"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	service      HistoryService
	defaultLimit int
}

// HistoryService interface for dependency injection
type HistoryService interface {
	List(ctx context.Context, limit int) ([]models.Location, error)
}

// NewHistoryHandler creates a history handler returning defaultLimit records when no limit is given
func NewHistoryHandler(svc HistoryService, defaultLimit int) *HistoryHandler {
	return &HistoryHandler{service: svc, defaultLimit: defaultLimit}
}

// History handles GET /history requests. limit=0 lists everything.
//
//	@Summary	Recorded lookups, newest first
//	@Produce	json
//	@Param		limit	query		int	false	"maximum number of records, 0 for all"
//	@Success	200		{array}		models.Location
//	@Failure	400		{object}	ErrorResponse
//	@Router		/history [get]
func (h *HistoryHandler) History(c *gin.Context) {
	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	locations, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}
