package hos

// FMCSA limits for property-carrying drivers.
const (
	MaxCycleHours           = 70.0 // 70 hours in 8 days
	MaxDutyPeriodHours      = 14.0 // driving window after coming on duty
	MaxDrivingHours         = 11.0 // driving inside one duty period
	BreakRequiredAfterHours = 8.0  // 30-minute break after this much driving
	MinOffDutyHours         = 10.0 // off duty to reset the duty period
	RestartOffDutyHours     = 34.0 // off duty for a full cycle restart
)

// AvailableHours is the remaining room under each limit plus whether the
// driver may legally drive right now.
type AvailableHours struct {
	CycleHours      float64 `json:"cycle_hours"`
	DutyPeriodHours float64 `json:"duty_period_hours"`
	DrivingHours    float64 `json:"driving_hours"`
	HoursUntilBreak float64 `json:"hours_until_break"`

	CanDrive        bool   `json:"can_drive"`
	ViolationReason string `json:"violation_reason,omitempty"`

	// MaxContinuousDriving is the longest stretch available before any
	// limit or the 30-minute break interrupts.
	MaxContinuousDriving float64 `json:"max_continuous_driving"`
}

// CalculateAvailableHours computes per-limit remainders, clamped at zero.
// Like Classify, it performs no input validation.
func CalculateAvailableHours(cycleHours, dutyPeriodHours, drivingHours, hoursSinceBreak float64) AvailableHours {
	avail := AvailableHours{
		CycleHours:      clamp(MaxCycleHours - cycleHours),
		DutyPeriodHours: clamp(MaxDutyPeriodHours - dutyPeriodHours),
		DrivingHours:    clamp(MaxDrivingHours - drivingHours),
		HoursUntilBreak: clamp(BreakRequiredAfterHours - hoursSinceBreak),
	}

	switch {
	case avail.CycleHours <= 0:
		avail.ViolationReason = "70-hour/8-day cycle limit reached"
	case avail.DutyPeriodHours <= 0:
		avail.ViolationReason = "14-hour duty period limit reached"
	case avail.DrivingHours <= 0:
		avail.ViolationReason = "11-hour driving limit reached"
	case avail.HoursUntilBreak <= 0:
		avail.ViolationReason = "30-minute break required"
	default:
		avail.CanDrive = true
	}

	if avail.CanDrive {
		avail.MaxContinuousDriving = min(
			avail.CycleHours,
			min(avail.DutyPeriodHours, min(avail.DrivingHours, avail.HoursUntilBreak)),
		)
	}
	return avail
}

func clamp(hours float64) float64 {
	if hours < 0 {
		return 0
	}
	return hours
}
