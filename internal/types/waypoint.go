package types

// Waypoint types reported by the trip-planning backend. Unknown tags are
// still rendered, classified as WaypointRoutePoint.
const (
	WaypointOrigin     = "origin"
	WaypointPickup     = "pickup"
	WaypointDropoff    = "dropoff"
	WaypointRestStop   = "rest_stop"
	WaypointFuelStop   = "fuel_stop"
	WaypointBreak30Min = "break_30min"
	WaypointBreak10Hr  = "break_10hour"
	WaypointRoutePoint = "route_point"
	WaypointCheckpoint = "checkpoint"
)

// Waypoint is one point along a planned route, including mandatory stops
// inserted for hours-of-service compliance.
type Waypoint struct {
	Sequence                int     `json:"sequence_order"`
	Latitude                float64 `json:"latitude"`
	Longitude               float64 `json:"longitude"`
	Address                 string  `json:"address,omitempty"`
	Type                    string  `json:"waypoint_type"`
	DistanceFromPrevMiles   float64 `json:"distance_from_previous_miles"`
	TimeFromPrevMinutes     int     `json:"estimated_time_from_previous_minutes"`
	IsMandatoryStop         bool    `json:"is_mandatory_stop"`
	StopDurationMinutes     int     `json:"estimated_stop_duration_minutes"`
	StopReason              string  `json:"stop_reason,omitempty"`
}
