package main

import (
	"net/http"
	"strconv"

	"haulplan/internal/location"
	"haulplan/internal/types"

	"github.com/gin-gonic/gin"
)

// AutocompleteResponse represents the response for the autocomplete endpoint
type AutocompleteResponse struct {
	Query       string                    `json:"query"`
	CountryCode string                    `json:"country_code,omitempty"` // Country the search was scoped to
	Results     []types.LocationCandidate `json:"results"`
}

// handleAutocomplete godoc
// @Summary Autocomplete a location query
// @Description Suggest locations for a partial query, scoped to the resolved country unless one is given
// @Tags location
// @Produce json
// @Param q query string true "Partial location query"
// @Param country query string false "Two-letter country code; defaults to the detected country"
// @Param limit query int false "Maximum number of suggestions"
// @Param truck_friendly query bool false "Rank truck-accessible results first"
// @Success 200 {object} AutocompleteResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /location/autocomplete [get]
func (app *App) handleAutocomplete(c *gin.Context) {
	query := c.Query("q")

	countryCode := types.NormalizeCountryCode(c.Query("country"))
	if countryCode == "" {
		countryCode = app.resolvedCountry(c)
	}

	limit := app.cfg.Gazetteer.Limit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	truckFriendly, _ := strconv.ParseBool(c.Query("truck_friendly"))

	results, err := app.locationService.Autocomplete(c.Request.Context(), query, location.AutocompleteOptions{
		CountryCode:   countryCode,
		Limit:         limit,
		TruckFriendly: truckFriendly,
	})
	if err != nil {
		app.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, AutocompleteResponse{
		Query:       query,
		CountryCode: countryCode,
		Results:     results,
	})
}

// handleGeocode godoc
// @Summary Geocode an address
// @Description Resolve a free-text address to a single location candidate
// @Tags location
// @Produce json
// @Param q query string true "Address to geocode"
// @Success 200 {object} types.LocationCandidate
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /location/geocode [get]
func (app *App) handleGeocode(c *gin.Context) {
	candidate, err := app.locationService.Geocode(c.Request.Context(), c.Query("q"))
	if err != nil {
		app.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// handleReverseGeocode godoc
// @Summary Reverse geocode coordinates
// @Description Resolve latitude and longitude to the nearest addressable location
// @Tags location
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Success 200 {object} types.LocationCandidate
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /location/reverse [get]
func (app *App) handleReverseGeocode(c *gin.Context) {
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

	candidate, err := app.locationService.ReverseGeocode(c.Request.Context(), latitude, longitude)
	if err != nil {
		app.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// resolvedCountry returns the detected country code, or the configured
// default when the cascade came up empty.
func (app *App) resolvedCountry(c *gin.Context) string {
	if result, ok := app.countryService.Resolve(c.Request.Context()); ok {
		return result.CountryCode
	}
	return app.cfg.App.DefaultCountry
}
