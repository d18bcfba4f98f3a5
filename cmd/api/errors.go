package main

import (
	"errors"
	"net/http"

	"haulplan/internal/country"
	"haulplan/internal/location"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body for all endpoints
type ErrorResponse struct {
	Error string `json:"error" example:"no matching location"` // Error message
}

// renderError maps resolver errors onto HTTP statuses. A superseded call is
// not a failure: a newer request for the same input owns the response, so
// this one ends with no body and nothing logged.
func (app *App) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, location.ErrSuperseded):
		c.AbortWithStatus(http.StatusNoContent)
	case errors.Is(err, location.ErrInvalidInput),
		errors.Is(err, location.ErrInvalidQuery),
		errors.Is(err, country.ErrInvalidCountryCode):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, location.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, location.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: err.Error()})
	case errors.Is(err, location.ErrAuth):
		// Upstream credential problem, surfaced verbatim so operators see
		// the quota or billing failure instead of a generic 5xx.
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	case errors.Is(err, location.ErrNetwork):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		app.logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
