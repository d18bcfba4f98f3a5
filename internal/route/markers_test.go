package route

import (
	"testing"

	"haulplan/internal/types"
)

func TestClassifyWaypoint(t *testing.T) {
	tests := []struct {
		name         string
		waypointType string
		wantKind     string
	}{
		{name: "origin", waypointType: types.WaypointOrigin, wantKind: "origin"},
		{name: "pickup", waypointType: types.WaypointPickup, wantKind: "pickup"},
		{name: "dropoff", waypointType: types.WaypointDropoff, wantKind: "dropoff"},
		{name: "fuel stop", waypointType: types.WaypointFuelStop, wantKind: "fuel"},
		{name: "30 minute break", waypointType: types.WaypointBreak30Min, wantKind: "break"},
		{name: "10 hour rest", waypointType: types.WaypointBreak10Hr, wantKind: "rest"},
		{name: "rest stop", waypointType: types.WaypointRestStop, wantKind: "rest"},
		{name: "checkpoint", waypointType: types.WaypointCheckpoint, wantKind: "checkpoint"},
		{name: "route point", waypointType: types.WaypointRoutePoint, wantKind: "waypoint"},
		{name: "unknown tag renders generic", waypointType: "scenic_overlook", wantKind: "waypoint"},
		{name: "empty tag renders generic", waypointType: "", wantKind: "waypoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyWaypoint(tt.waypointType)
			if got.Kind != tt.wantKind {
				t.Errorf("ClassifyWaypoint(%q).Kind = %q, want %q", tt.waypointType, got.Kind, tt.wantKind)
			}
			if got.Label == "" {
				t.Errorf("ClassifyWaypoint(%q) has empty label", tt.waypointType)
			}
		})
	}
}
