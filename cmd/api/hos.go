package main

import (
	"fmt"
	"net/http"
	"strconv"

	"haulplan/internal/hos"

	"github.com/gin-gonic/gin"
)

// HOSStatusResponse represents a projected hours-of-service status
type HOSStatusResponse struct {
	CycleHoursUsed  float64              `json:"cycle_hours_used"`
	AdditionalHours float64              `json:"additional_hours"`
	Status          hos.ComplianceStatus `json:"status" example:"warning"`
	Available       hos.AvailableHours   `json:"available"`
}

// handleHOSStatus godoc
// @Summary Project hours-of-service compliance
// @Description Classify cycle hours plus planned additional hours against the FMCSA 70-hour/8-day limits and report remaining hours per limit
// @Tags hos
// @Produce json
// @Param cycle_hours query number true "Cycle hours already used"
// @Param additional_hours query number false "Planned additional hours"
// @Param duty_period_hours query number false "Hours on duty in the current duty period"
// @Param driving_hours query number false "Hours driven in the current duty period"
// @Param hours_since_break query number false "Hours driven since the last 30-minute break"
// @Success 200 {object} HOSStatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /hos/status [get]
func (app *App) handleHOSStatus(c *gin.Context) {
	cycleHours, err := hoursParam(c, "cycle_hours", true)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	additionalHours, err := hoursParam(c, "additional_hours", false)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	dutyPeriod, err := hoursParam(c, "duty_period_hours", false)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	driving, err := hoursParam(c, "driving_hours", false)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	sinceBreak, err := hoursParam(c, "hours_since_break", false)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, hosStatusResponse(cycleHours, additionalHours, dutyPeriod, driving, sinceBreak))
}

// hosStatusResponse classifies a cycle projection and bundles the remaining
// hours. The trip response and the standalone endpoint both build their
// status here so the labels can never disagree.
func hosStatusResponse(cycleHoursUsed, additionalHours, dutyPeriod, driving, sinceBreak float64) HOSStatusResponse {
	return HOSStatusResponse{
		CycleHoursUsed:  cycleHoursUsed,
		AdditionalHours: additionalHours,
		Status:          hos.Classify(cycleHoursUsed, additionalHours),
		Available:       hos.CalculateAvailableHours(cycleHoursUsed+additionalHours, dutyPeriod, driving, sinceBreak),
	}
}

// hoursParam parses a non-negative hours value from the query string.
// Optional parameters default to zero when absent.
func hoursParam(c *gin.Context, name string, required bool) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		if required {
			return 0, fmt.Errorf("%s is required", name)
		}
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return value, nil
}
