package main

import (
	"net/http"
	"strings"

	"haulplan/internal/providers/tripapi"
	"haulplan/internal/route"
	"haulplan/internal/types"

	"github.com/gin-gonic/gin"
)

// RouteWaypoint pairs a backend waypoint with its map marker
type RouteWaypoint struct {
	types.Waypoint
	Marker route.Marker `json:"marker"`
}

// TripPlanResponse represents a planned trip ready to draw
type TripPlanResponse struct {
	TripID             string                   `json:"trip_id"`
	Coordinates        types.CoordinateSequence `json:"coordinates"` // Ordered (lat,lon) pairs for the route line
	Waypoints          []RouteWaypoint          `json:"waypoints"`
	TotalDistanceMiles float64                  `json:"total_distance_miles"`
	TotalDurationHours float64                  `json:"total_duration_hours"`
	HOS                HOSStatusResponse        `json:"hos"`
}

// handlePlanTrip godoc
// @Summary Plan a trip
// @Description Submit trip input to the planning backend and return drawable route coordinates, classified waypoints and the projected hours-of-service status
// @Tags trips
// @Accept json
// @Produce json
// @Param request body tripapi.PlanTripRequest true "Trip input"
// @Success 200 {object} TripPlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /trips/plan [post]
func (app *App) handlePlanTrip(c *gin.Context) {
	var req tripapi.PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body must be valid JSON trip input"})
		return
	}
	if strings.TrimSpace(req.CurrentLocation) == "" ||
		strings.TrimSpace(req.PickupLocation) == "" ||
		strings.TrimSpace(req.DropoffLocation) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "current, pickup and dropoff locations are required"})
		return
	}

	plan, err := app.tripClient.PlanTrip(c.Request.Context(), req)
	app.metrics.RecordUpstream("tripapi", "plan", err)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "trip planning backend failed"})
		app.logger.Error("trip planning failed", "error", err)
		return
	}

	coords := route.Decode(plan.Route.Geometry, plan.Route.Waypoints, &route.Endpoints{
		Current: types.NewCoords(req.CurrentLat, req.CurrentLng),
		Pickup:  types.NewCoords(req.PickupLat, req.PickupLng),
		Dropoff: types.NewCoords(req.DropoffLat, req.DropoffLng),
	})

	waypoints := make([]RouteWaypoint, 0, len(plan.Route.Waypoints))
	for _, wp := range plan.Route.Waypoints {
		waypoints = append(waypoints, RouteWaypoint{
			Waypoint: wp,
			Marker:   route.ClassifyWaypoint(wp.Type),
		})
	}

	c.JSON(http.StatusOK, TripPlanResponse{
		TripID:             plan.TripID,
		Coordinates:        coords,
		Waypoints:          waypoints,
		TotalDistanceMiles: plan.Route.TotalDistanceMiles,
		TotalDurationHours: plan.Route.TotalDurationHours,
		HOS: hosStatusResponse(plan.HOSStatus.CurrentCycleUsed, plan.HOSStatus.ProjectedTripHours, 0, 0, 0),
	})
}
