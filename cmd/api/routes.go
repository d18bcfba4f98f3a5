package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Location endpoints
	app.router.GET("/location/autocomplete", app.handleAutocomplete)
	app.router.GET("/location/geocode", app.handleGeocode)
	app.router.GET("/location/reverse", app.handleReverseGeocode)

	// Country detection endpoints
	app.router.GET("/country", app.handleGetCountry)
	app.router.POST("/country/manual", app.handleSetCountry)
	app.router.POST("/country/refresh", app.handleRefreshCountry)
	app.router.GET("/country/from-coordinates", app.handleCountryFromCoordinates)

	// Trip planning endpoint
	app.router.POST("/trips/plan", app.handlePlanTrip)

	// Hours-of-service endpoint
	app.router.GET("/hos/status", app.handleHOSStatus)

	// Prometheus scrape endpoint
	app.router.GET("/metrics", gin.WrapH(app.metrics.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
