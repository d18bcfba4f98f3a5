package hos

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name            string
		cycleHoursUsed  float64
		additionalHours float64
		want            ComplianceStatus
	}{
		{
			name:            "well under the warning threshold",
			cycleHoursUsed:  50,
			additionalHours: 5,
			want:            StatusCompliant,
		},
		{
			name:            "exactly at the warning threshold",
			cycleHoursUsed:  55,
			additionalHours: 5,
			want:            StatusWarning,
		},
		{
			name:            "between warning and violation",
			cycleHoursUsed:  62,
			additionalHours: 3,
			want:            StatusWarning,
		},
		{
			name:            "exactly at the violation threshold",
			cycleHoursUsed:  65,
			additionalHours: 5,
			want:            StatusViolation,
		},
		{
			name:            "over the violation threshold",
			cycleHoursUsed:  70,
			additionalHours: 12,
			want:            StatusViolation,
		},
		{
			name:            "zero hours",
			cycleHoursUsed:  0,
			additionalHours: 0,
			want:            StatusCompliant,
		},
		{
			name:            "additional hours alone cross the threshold",
			cycleHoursUsed:  0,
			additionalHours: 61,
			want:            StatusWarning,
		},
		{
			name:            "negative projection stays compliant",
			cycleHoursUsed:  -10,
			additionalHours: 5,
			want:            StatusCompliant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.cycleHoursUsed, tt.additionalHours)
			if got != tt.want {
				t.Errorf("Classify(%v, %v) = %q, want %q",
					tt.cycleHoursUsed, tt.additionalHours, got, tt.want)
			}
		})
	}
}

func TestClassifyJustBelowBoundaries(t *testing.T) {
	if got := Classify(59.99, 0); got != StatusCompliant {
		t.Errorf("Classify(59.99, 0) = %q, want %q", got, StatusCompliant)
	}
	if got := Classify(69.99, 0); got != StatusWarning {
		t.Errorf("Classify(69.99, 0) = %q, want %q", got, StatusWarning)
	}
}
