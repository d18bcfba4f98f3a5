package route

import "haulplan/internal/types"

// Marker is how a waypoint renders on the map: a stable kind for icon
// selection plus a human label.
type Marker struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

var markersByType = map[string]Marker{
	types.WaypointOrigin:     {Kind: "origin", Label: "Current Location"},
	types.WaypointPickup:     {Kind: "pickup", Label: "Pickup"},
	types.WaypointDropoff:    {Kind: "dropoff", Label: "Dropoff"},
	types.WaypointFuelStop:   {Kind: "fuel", Label: "Fuel Stop"},
	types.WaypointBreak30Min: {Kind: "break", Label: "30-Minute Break"},
	types.WaypointBreak10Hr:  {Kind: "rest", Label: "10-Hour Rest"},
	types.WaypointRestStop:   {Kind: "rest", Label: "Rest Stop"},
	types.WaypointCheckpoint: {Kind: "checkpoint", Label: "Checkpoint"},
	types.WaypointRoutePoint: {Kind: "waypoint", Label: "Waypoint"},
}

// ClassifyWaypoint maps a waypoint_type tag to its marker. Unknown tags
// render as a generic waypoint rather than being dropped.
func ClassifyWaypoint(waypointType string) Marker {
	if m, ok := markersByType[waypointType]; ok {
		return m
	}
	return Marker{Kind: "waypoint", Label: "Waypoint"}
}
