// Package hos implements the hours-of-service rules for property-carrying
// commercial vehicles under the FMCSA 70-hour/8-day envelope.
package hos

// ComplianceStatus is the three-way classification shown across every view.
type ComplianceStatus string

const (
	StatusCompliant ComplianceStatus = "compliant"
	StatusWarning   ComplianceStatus = "warning"
	StatusViolation ComplianceStatus = "violation"
)

// Classification thresholds against the 70-hour cycle. Both boundaries are
// inclusive.
const (
	WarningThresholdHours   = 60.0
	ViolationThresholdHours = 70.0
)

// Classify projects cycle hours plus planned additional hours onto a
// compliance status. It is a pure, total function: every view that displays
// compliance calls this one function so the labels can never disagree.
// Inputs are not validated here; range checking is the caller's job.
func Classify(cycleHoursUsed, additionalHours float64) ComplianceStatus {
	projected := cycleHoursUsed + additionalHours
	switch {
	case projected >= ViolationThresholdHours:
		return StatusViolation
	case projected >= WarningThresholdHours:
		return StatusWarning
	default:
		return StatusCompliant
	}
}
