package location

import "testing"

func TestTruckAccessible(t *testing.T) {
	tests := []struct {
		name      string
		class     string
		placeType string
		want      bool
	}{
		{
			name:      "dedicated truck stop",
			class:     "amenity",
			placeType: "truck_stop",
			want:      true,
		},
		{
			name:      "fuel station",
			class:     "amenity",
			placeType: "fuel",
			want:      true,
		},
		{
			name:      "highway rest area",
			class:     "highway",
			placeType: "rest_area",
			want:      true,
		},
		{
			name:      "motorway road",
			class:     "highway",
			placeType: "motorway",
			want:      true,
		},
		{
			name:      "trunk road",
			class:     "highway",
			placeType: "trunk",
			want:      true,
		},
		{
			name:      "residential road",
			class:     "highway",
			placeType: "residential",
			want:      false,
		},
		{
			name:      "motorway type under a non-highway class",
			class:     "place",
			placeType: "motorway",
			want:      false,
		},
		{
			name:      "plain city",
			class:     "place",
			placeType: "city",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truckAccessible(tt.class, tt.placeType); got != tt.want {
				t.Errorf("truckAccessible(%q, %q) = %v, want %v", tt.class, tt.placeType, got, tt.want)
			}
		})
	}
}
