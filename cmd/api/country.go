package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"haulplan/internal/types"

	"github.com/gin-gonic/gin"
)

// SetCountryRequest represents the body for the manual country override
type SetCountryRequest struct {
	Code string `json:"code" example:"us"` // Two-letter country code
}

// handleGetCountry godoc
// @Summary Get the current country
// @Description Return the detected country, running the detection cascade if needed
// @Tags country
// @Produce json
// @Success 200 {object} types.DetectionResult
// @Router /country [get]
func (app *App) handleGetCountry(c *gin.Context) {
	result, ok := app.countryService.Resolve(c.Request.Context())
	if !ok {
		result = app.defaultDetection()
	}
	c.JSON(http.StatusOK, result)
}

// handleSetCountry godoc
// @Summary Set the country manually
// @Description Override detection with a user-chosen two-letter country code
// @Tags country
// @Accept json
// @Produce json
// @Param request body SetCountryRequest true "Country override"
// @Success 200 {object} types.DetectionResult
// @Failure 400 {object} ErrorResponse
// @Router /country/manual [post]
func (app *App) handleSetCountry(c *gin.Context) {
	var req SetCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body must be JSON with a code field"})
		return
	}

	result, err := app.countryService.SetManual(req.Code)
	if err != nil {
		app.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleRefreshCountry godoc
// @Summary Re-run country detection
// @Description Discard the cached detection and run the full cascade again
// @Tags country
// @Produce json
// @Success 200 {object} types.DetectionResult
// @Router /country/refresh [post]
func (app *App) handleRefreshCountry(c *gin.Context) {
	result, ok := app.countryService.Refresh(c.Request.Context())
	if !ok {
		result = app.defaultDetection()
	}
	c.JSON(http.StatusOK, result)
}

// handleCountryFromCoordinates godoc
// @Summary Detect country from coordinates
// @Description Resolve coordinates to a country, correcting the cached detection when it differs
// @Tags country
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Success 200 {object} types.DetectionResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /country/from-coordinates [get]
func (app *App) handleCountryFromCoordinates(c *gin.Context) {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "latitude must be a number"})
		return
	}
	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "longitude must be a number"})
		return
	}

	result, err := app.countryService.DetectFromCoordinates(c.Request.Context(), latitude, longitude)
	if err != nil {
		if errors.Is(err, types.ErrInvalidLatitude) || errors.Is(err, types.ErrInvalidLongitude) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// defaultDetection is served when every cascade stage failed.
func (app *App) defaultDetection() types.DetectionResult {
	return types.DetectionResult{
		CountryCode: app.cfg.App.DefaultCountry,
		Method:      "default",
		DetectedAt:  time.Now(),
	}
}
