package tripapi

import (
	"encoding/json"

	"haulplan/internal/types"
)

// PlanTripRequest mirrors the trip-planning backend's create payload.
type PlanTripRequest struct {
	CurrentLocation  string  `json:"current_location"`
	PickupLocation   string  `json:"pickup_location"`
	DropoffLocation  string  `json:"dropoff_location"`
	CurrentLat       float64 `json:"current_lat"`
	CurrentLng       float64 `json:"current_lng"`
	PickupLat        float64 `json:"pickup_lat"`
	PickupLng        float64 `json:"pickup_lng"`
	DropoffLat       float64 `json:"dropoff_lat"`
	DropoffLng       float64 `json:"dropoff_lng"`
	CurrentCycleUsed float64 `json:"current_cycle_used"`
	DriverName       string  `json:"driver_name,omitempty"`
}

// RouteAPIResponse carries the computed route. Geometry is deliberately left
// raw: depending on the mapping service it is a GeoJSON object, a JSON-encoded
// GeoJSON string, a WKT LINESTRING, an encoded polyline, or absent.
type RouteAPIResponse struct {
	Geometry           json.RawMessage  `json:"route_geometry"`
	Waypoints          []types.Waypoint `json:"waypoints"`
	TotalDistanceMiles float64          `json:"total_distance_miles"`
	TotalDurationHours float64          `json:"total_duration_hours"`
}

// HOSStatusAPIResponse carries the backend's hours-of-service projection.
type HOSStatusAPIResponse struct {
	CurrentCycleUsed    float64 `json:"current_cycle_used"`
	AvailableCycleHours float64 `json:"available_cycle_hours"`
	ProjectedTripHours  float64 `json:"projected_trip_hours"`
}

// PlanTripAPIResponse is the full trip-planning response this service consumes.
type PlanTripAPIResponse struct {
	TripID    string               `json:"id"`
	Route     RouteAPIResponse     `json:"route"`
	HOSStatus HOSStatusAPIResponse `json:"hos_status"`
}
