package location

// Facility types that commercial drivers can reliably get a rig into. The
// list mirrors the amenity set the trip planner requests from OpenStreetMap
// (fuel, rest areas, motorway services, dedicated truck stops).
var truckFacilityTypes = map[string]bool{
	"truck_stop":    true,
	"fuel":          true,
	"rest_area":     true,
	"services":      true,
	"truck_parking": true,
	"weigh_station": true,
}

// Highway classes assumed navigable by a truck.
var truckRoadTypes = map[string]bool{
	"motorway": true,
	"trunk":    true,
	"primary":  true,
}

// truckAccessible is a best-effort heuristic, not an authoritative
// restriction check: facility type keyword match, or a highway-class road.
func truckAccessible(class, placeType string) bool {
	if truckFacilityTypes[placeType] {
		return true
	}
	return class == "highway" && truckRoadTypes[placeType]
}
