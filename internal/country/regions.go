package country

import (
	"strings"

	"haulplan/internal/types"
)

// zoneCountries maps exact IANA timezone names to country codes. The table
// covers the zones the driver base actually reports; anything else falls back
// to the region defaults below.
var zoneCountries = map[string]string{
	"America/New_York":     "us",
	"America/Chicago":      "us",
	"America/Denver":       "us",
	"America/Phoenix":      "us",
	"America/Los_Angeles":  "us",
	"America/Anchorage":    "us",
	"Pacific/Honolulu":     "us",
	"America/Detroit":      "us",
	"America/Boise":        "us",
	"America/Toronto":      "ca",
	"America/Vancouver":    "ca",
	"America/Edmonton":     "ca",
	"America/Winnipeg":     "ca",
	"America/Halifax":      "ca",
	"America/Mexico_City":  "mx",
	"America/Tijuana":      "mx",
	"America/Monterrey":    "mx",
	"America/Sao_Paulo":    "br",
	"Europe/London":        "gb",
	"Europe/Dublin":        "ie",
	"Europe/Paris":         "fr",
	"Europe/Berlin":        "de",
	"Europe/Madrid":        "es",
	"Europe/Rome":          "it",
	"Europe/Amsterdam":     "nl",
	"Europe/Warsaw":        "pl",
	"Europe/Lisbon":        "pt",
	"Europe/Moscow":        "ru",
	"Asia/Tokyo":           "jp",
	"Asia/Seoul":           "kr",
	"Asia/Shanghai":        "cn",
	"Asia/Hong_Kong":       "hk",
	"Asia/Singapore":       "sg",
	"Asia/Kolkata":         "in",
	"Asia/Dubai":           "ae",
	"Australia/Sydney":     "au",
	"Australia/Melbourne":  "au",
	"Australia/Brisbane":   "au",
	"Australia/Perth":      "au",
	"Pacific/Auckland":     "nz",
	"Africa/Johannesburg":  "za",
	"Africa/Lagos":         "ng",
	"Africa/Cairo":         "eg",
	"Africa/Nairobi":       "ke",
}

// regionDefaults maps a broad timezone region prefix to a single country.
// This is a deliberately coarse approximation carried over from the original
// detection logic (every Africa/* zone maps to za, and so on). Downstream
// behavior depends on the exact mapping; do not "improve" it.
var regionDefaults = []struct {
	prefix string
	code   string
}{
	{prefix: "America/", code: "us"},
	{prefix: "Europe/", code: "gb"},
	{prefix: "Africa/", code: "za"},
	{prefix: "Asia/", code: "in"},
	{prefix: "Australia/", code: "au"},
	{prefix: "Pacific/", code: "nz"},
}

// countryFromZone resolves an IANA zone name to a country code, trying the
// exact table first and the region default second. The method reports which
// path matched.
func countryFromZone(zone string) (code string, method string, ok bool) {
	if c, found := zoneCountries[zone]; found {
		return c, types.MethodTimezone, true
	}
	for _, rd := range regionDefaults {
		if strings.HasPrefix(zone, rd.prefix) {
			return rd.code, types.MethodTimezoneRegion, true
		}
	}
	return "", "", false
}

// countryBounds is the fixed per-country bounding-box table used for GPS
// detection. First match wins, so the list is ordered with the primary
// operating countries up front. Boxes are generous; overlap at the borders
// resolves in favor of the earlier entry.
var countryBounds = []struct {
	code string
	box  types.BoundingBox
}{
	{code: "us", box: types.BoundingBox{MinLat: 24.4, MaxLat: 49.4, MinLon: -125.0, MaxLon: -66.9}},
	{code: "ca", box: types.BoundingBox{MinLat: 41.7, MaxLat: 83.1, MinLon: -141.0, MaxLon: -52.6}},
	{code: "mx", box: types.BoundingBox{MinLat: 14.5, MaxLat: 32.7, MinLon: -118.4, MaxLon: -86.7}},
	{code: "gb", box: types.BoundingBox{MinLat: 49.9, MaxLat: 60.9, MinLon: -8.6, MaxLon: 1.8}},
	{code: "au", box: types.BoundingBox{MinLat: -43.6, MaxLat: -10.7, MinLon: 113.3, MaxLon: 153.6}},
}

// countryFromBounds returns the first bounding box containing the point.
func countryFromBounds(latitude, longitude float64) (string, bool) {
	for _, cb := range countryBounds {
		if cb.box.Contains(latitude, longitude) {
			return cb.code, true
		}
	}
	return "", false
}
