// Package route normalizes the trip backend's route geometry, whichever of
// its wire encodings shows up, into one ordered (lat,lon) coordinate
// sequence for the map surface.
package route

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-polyline"

	"haulplan/internal/types"
)

// Endpoints are the three trip anchors used to synthesize a straight-line
// route when no geometry survives parsing.
type Endpoints struct {
	Current types.Coords
	Pickup  types.Coords
	Dropoff types.Coords
}

// geometryParsers are the decode tiers for the geometry payload itself, in
// resolution order. Each returns ok=false to fall through; none ever error
// out of the decode. Keeping them in a slice keeps the fallback order
// auditable and testable per tier.
var geometryParsers = []func(raw json.RawMessage) (types.CoordinateSequence, bool){
	parseGeoJSON,
	parseWKT,
	parseRawPairs,
	parsePolyline,
}

// Decode resolves a route's wire geometry into a coordinate sequence. The
// first tier yielding at least one coordinate wins; there is no merging
// across tiers. Malformed input is never an error; the terminal fallback is
// an empty sequence, which tells the caller "no route to draw".
//
// Tier order: GeoJSON LineString (object or JSON-string form), WKT
// LINESTRING, raw [lon,lat] pair array, encoded polyline, then straight-line
// synthesis across the endpoints, then the waypoint list.
func Decode(geometry json.RawMessage, waypoints []types.Waypoint, endpoints *Endpoints) types.CoordinateSequence {
	if len(geometry) > 0 && string(geometry) != "null" {
		for _, parse := range geometryParsers {
			if seq, ok := parse(geometry); ok && len(seq) > 0 {
				return seq
			}
		}
	}

	if endpoints != nil {
		if seq, ok := synthesizeFromEndpoints(*endpoints); ok {
			return seq
		}
	}

	return fromWaypoints(waypoints)
}

// parseGeoJSON handles a GeoJSON LineString, either as an object or as a
// JSON-encoded string wrapping one. Wire order is lon,lat and gets swapped.
func parseGeoJSON(raw json.RawMessage) (types.CoordinateSequence, bool) {
	// The string form first: `"{\"type\":\"LineString\",...}"`.
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		trimmed := strings.TrimSpace(inner)
		if !strings.HasPrefix(trimmed, "{") {
			return nil, false
		}
		raw = json.RawMessage(trimmed)
	}

	geom, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, false
	}
	line, ok := geom.Geometry().(orb.LineString)
	if !ok {
		return nil, false
	}

	seq := make(types.CoordinateSequence, 0, len(line))
	for _, point := range line {
		// orb points are (lon, lat).
		seq = append(seq, types.NewCoords(point.Lat(), point.Lon()))
	}
	return seq, true
}

// parseWKT handles `LINESTRING(lon lat, lon lat, ...)`.
func parseWKT(raw json.RawMessage) (types.CoordinateSequence, bool) {
	text, ok := rawAsString(raw)
	if !ok {
		return nil, false
	}
	text = strings.TrimSpace(text)

	upper := strings.ToUpper(text)
	if !strings.HasPrefix(upper, "LINESTRING") {
		return nil, false
	}

	open := strings.Index(text, "(")
	end := strings.LastIndex(text, ")")
	if open < 0 || end < open {
		return nil, false
	}

	seq := types.CoordinateSequence{}
	for _, pair := range strings.Split(text[open+1:end], ",") {
		fields := strings.Fields(pair)
		if len(fields) != 2 {
			return nil, false
		}
		lon, err1 := strconv.ParseFloat(fields[0], 64)
		lat, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return nil, false
		}
		seq = append(seq, types.NewCoords(lat, lon))
	}
	return seq, len(seq) > 0
}

// parseRawPairs handles a bare JSON array of [lon,lat] pairs.
func parseRawPairs(raw json.RawMessage) (types.CoordinateSequence, bool) {
	var pairs [][]float64
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, false
	}

	seq := make(types.CoordinateSequence, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) < 2 {
			return nil, false
		}
		seq = append(seq, types.NewCoords(pair[1], pair[0]))
	}
	return seq, len(seq) > 0
}

// parsePolyline handles the mapping service's encoded-polyline form. The
// encoding is dense enough that arbitrary text often "decodes", so decoded
// points are sanity-checked against coordinate ranges before acceptance.
func parsePolyline(raw json.RawMessage) (types.CoordinateSequence, bool) {
	text, ok := rawAsString(raw)
	if !ok || text == "" {
		return nil, false
	}

	coords, remaining, err := polyline.DecodeCoords([]byte(text))
	if err != nil || len(remaining) != 0 || len(coords) == 0 {
		return nil, false
	}

	seq := make(types.CoordinateSequence, 0, len(coords))
	for _, c := range coords {
		// DecodeCoords yields (lat, lon) already.
		point := types.NewCoords(c[0], c[1])
		if point.Validate() != nil {
			return nil, false
		}
		seq = append(seq, point)
	}
	return seq, true
}

// synthesizeFromEndpoints builds the current→pickup→dropoff straight line,
// but only when all three anchors are usable.
func synthesizeFromEndpoints(e Endpoints) (types.CoordinateSequence, bool) {
	anchors := []types.Coords{e.Current, e.Pickup, e.Dropoff}
	for _, a := range anchors {
		if a.IsZeroSentinel() || a.Validate() != nil {
			return nil, false
		}
	}
	return types.CoordinateSequence(anchors), true
}

// fromWaypoints is the last tier: the waypoint list with sentinel and
// malformed entries dropped. (0,0) is "position unknown", not the Gulf of
// Guinea.
func fromWaypoints(waypoints []types.Waypoint) types.CoordinateSequence {
	seq := types.CoordinateSequence{}
	for _, wp := range waypoints {
		point := types.NewCoords(wp.Latitude, wp.Longitude)
		if point.IsZeroSentinel() || point.Validate() != nil {
			continue
		}
		seq = append(seq, point)
	}
	return seq
}

func rawAsString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
