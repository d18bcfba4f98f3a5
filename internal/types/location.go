package types

// Address is the structured form of a gazetteer place address.
type Address struct {
	Street      string `json:"street,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// BoundingBox is a lat/lon envelope around a place.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// Contains reports whether the point lies inside the box, edges included.
func (b BoundingBox) Contains(latitude, longitude float64) bool {
	return latitude >= b.MinLat && latitude <= b.MaxLat &&
		longitude >= b.MinLon && longitude <= b.MaxLon
}

// LocationCandidate is one normalized search/geocode result. It is built once
// from a single upstream record and never mutated afterwards.
type LocationCandidate struct {
	ID              string       `json:"id"`
	DisplayName     string       `json:"display_name"`
	Address         Address      `json:"address"`
	Coordinates     Coords       `json:"coordinates"`
	SourceType      string       `json:"source_type"`
	TruckAccessible bool         `json:"truck_accessible"`
	BoundingBox     *BoundingBox `json:"bounding_box,omitempty"`
}
