package types

import (
	"errors"
	"math"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90 degrees")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180 degrees")
)

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate checks the coordinate ranges. NaN and infinities are rejected.
func (c Coords) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) || c.Latitude < -90 || c.Latitude > 90 {
		return ErrInvalidLatitude
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) || c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// IsZeroSentinel reports whether both coordinates are exactly zero. Upstream
// systems use (0,0) as "position unknown", not as a real ocean fix.
func (c Coords) IsZeroSentinel() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// CoordinateSequence is an ordered list of points in (lat,lon) order, ready
// for a map surface. Wire formats carry lon,lat; the route decoder swaps.
type CoordinateSequence []Coords
