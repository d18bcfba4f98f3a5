package types

import (
	"strings"
	"time"
	"unicode"
)

// Detection methods recorded alongside a resolved country code. IP-based
// detections carry the provider name, e.g. "ip:ipapi.co".
const (
	MethodLocale         = "locale"
	MethodTimezone       = "timezone"
	MethodTimezoneRegion = "timezone_region"
	MethodGPS            = "gps"
	MethodManual         = "manual"
)

// MethodIP builds the detection method string for an IP geolocation provider.
func MethodIP(provider string) string {
	return "ip:" + provider
}

// DetectionResult is the outcome of one country detection, whatever the source.
type DetectionResult struct {
	CountryCode string    `json:"country_code"`
	Method      string    `json:"method"`
	DetectedAt  time.Time `json:"detected_at"`
}

// NormalizeCountryCode lowercases and trims a country code candidate.
func NormalizeCountryCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// ValidCountryCode reports whether code is exactly two alphabetic characters.
// Partial or decorated codes ("u", "us1", "us-east") are never accepted.
func ValidCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
