package timezone

import (
	"testing"
)

func TestService_GetTimezone(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "Baltimore, Maryland",
			latitude:  39.2904,
			longitude: -76.6122,
			want:      "America/New_York",
		},
		{
			name:      "Denver, Colorado",
			latitude:  39.7392,
			longitude: -104.9903,
			want:      "America/Denver",
		},
		{
			name:      "London, UK",
			latitude:  51.5074,
			longitude: -0.1278,
			want:      "Europe/London",
		},
		{
			name:      "Sydney, Australia",
			latitude:  -33.8688,
			longitude: 151.2093,
			want:      "Australia/Sydney",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}
