package app

import (
	"net/http"

	_ "geolocator/docs"
	"geolocator/internal/handler"
	"geolocator/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router builds the HTTP interface: the search form, the JSON API and the map documents.
func (a *App) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log.Logger))

	geoCodeHandler := handler.NewGeoCodeHandler(a.Geocode)
	reverseGeocodeHandler := handler.NewReverseGeocodeHandler(a.Reverse)
	distanceHandler := handler.NewDistanceHandler(a.Distance)
	historyHandler := handler.NewHistoryHandler(a.History, a.Config.HistoryLimit)
	mapHandler := handler.NewMapHandler(a.Map)

	r.GET("/", handler.Form)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/geocode", geoCodeHandler.GeoCode)
	r.GET("/reverse-geocode", reverseGeocodeHandler.ReverseGeocode)
	r.GET("/distance", distanceHandler.Distance)
	r.GET("/history", historyHandler.History)
	r.GET("/map", mapHandler.Map)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
