package country

import (
	"testing"

	"haulplan/internal/types"
)

func TestCountryFromZone(t *testing.T) {
	tests := []struct {
		name       string
		zone       string
		wantCode   string
		wantMethod string
		wantOK     bool
	}{
		{
			name:       "exact match",
			zone:       "America/Denver",
			wantCode:   "us",
			wantMethod: types.MethodTimezone,
			wantOK:     true,
		},
		{
			name:       "exact match outside the Americas",
			zone:       "Europe/Warsaw",
			wantCode:   "pl",
			wantMethod: types.MethodTimezone,
			wantOK:     true,
		},
		{
			name:       "unlisted Africa zone falls back to region default",
			zone:       "Africa/Douala",
			wantCode:   "za",
			wantMethod: types.MethodTimezoneRegion,
			wantOK:     true,
		},
		{
			name:       "unlisted America zone falls back to region default",
			zone:       "America/Boa_Vista",
			wantCode:   "us",
			wantMethod: types.MethodTimezoneRegion,
			wantOK:     true,
		},
		{
			name:   "region without a default",
			zone:   "Antarctica/McMurdo",
			wantOK: false,
		},
		{
			name:   "not a zone name at all",
			zone:   "UTC",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, method, ok := countryFromZone(tt.zone)
			if ok != tt.wantOK {
				t.Fatalf("countryFromZone(%q) ok = %v, want %v", tt.zone, ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if code != tt.wantCode {
				t.Errorf("code = %q, want %q", code, tt.wantCode)
			}
			if method != tt.wantMethod {
				t.Errorf("method = %q, want %q", method, tt.wantMethod)
			}
		})
	}
}

func TestCountryFromBounds(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantCode  string
		wantOK    bool
	}{
		{
			name:      "Baltimore is in the US box",
			latitude:  39.29,
			longitude: -76.61,
			wantCode:  "us",
			wantOK:    true,
		},
		{
			name:      "Yellowknife is in the Canada box",
			latitude:  62.45,
			longitude: -114.37,
			wantCode:  "ca",
			wantOK:    true,
		},
		{
			name:      "Oaxaca is in the Mexico box",
			latitude:  17.06,
			longitude: -96.72,
			wantCode:  "mx",
			wantOK:    true,
		},
		{
			name:      "border overlap resolves to the earlier entry",
			latitude:  49.0, // inside both the us and ca boxes
			longitude: -122.0,
			wantCode:  "us",
			wantOK:    true,
		},
		{
			name:      "mid-Atlantic matches nothing",
			latitude:  30.0,
			longitude: -40.0,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := countryFromBounds(tt.latitude, tt.longitude)
			if ok != tt.wantOK {
				t.Fatalf("countryFromBounds() ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantOK && code != tt.wantCode {
				t.Errorf("code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}
