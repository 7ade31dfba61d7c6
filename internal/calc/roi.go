// Package calc holds the derived-metrics calculators behind the marketing
// tools. Everything here is pure arithmetic on user-supplied inputs.
package calc

import (
	"fmt"

	"github.com/asymmetric-studio/site-api/internal/models"
)

// WorkHoursPerYear is the standard full-time hours used for the reclaimed
// hours projection.
const WorkHoursPerYear = 2080

// Slider bounds enforced on ROI inputs
const (
	MinEmployees      = 1
	MaxEmployees      = 500
	MinAvgSalary      = 30000
	MaxAvgSalary      = 200000
	MinAutomationRate = 5
	MaxAutomationRate = 90
)

// ROIInput holds the calculator sliders
type ROIInput struct {
	Employees      int `json:"employees"`
	AvgSalary      int `json:"avgSalary"`
	AutomationRate int `json:"automationRate"`
}

// ROIResult holds the derived savings projection
type ROIResult struct {
	AnnualCost      float64 `json:"annualCost"`
	AnnualSavings   float64 `json:"annualSavings"`
	FiveYearSavings float64 `json:"fiveYearSavings"`
	HoursSaved      float64 `json:"hoursSaved"`
	// Implementation-plan figures shown alongside the projection
	AutomatableRoles int     `json:"automatableRoles"`
	Reinvestment     float64 `json:"reinvestment"`
}

// Validate checks the inputs against the slider bounds
func (in *ROIInput) Validate() error {
	if in.Employees < MinEmployees || in.Employees > MaxEmployees {
		return &models.ValidationError{
			Field:   "employees",
			Message: fmt.Sprintf("must be between %d and %d", MinEmployees, MaxEmployees),
		}
	}
	if in.AvgSalary < MinAvgSalary || in.AvgSalary > MaxAvgSalary {
		return &models.ValidationError{
			Field:   "avgSalary",
			Message: fmt.Sprintf("must be between %d and %d", MinAvgSalary, MaxAvgSalary),
		}
	}
	if in.AutomationRate < MinAutomationRate || in.AutomationRate > MaxAutomationRate {
		return &models.ValidationError{
			Field:   "automationRate",
			Message: fmt.Sprintf("must be between %d and %d", MinAutomationRate, MaxAutomationRate),
		}
	}
	return nil
}

// ROI computes the savings projection for the given inputs
func ROI(in ROIInput) ROIResult {
	rate := float64(in.AutomationRate) / 100
	annualCost := float64(in.Employees) * float64(in.AvgSalary)
	annualSavings := annualCost * rate
	return ROIResult{
		AnnualCost:       annualCost,
		AnnualSavings:    annualSavings,
		FiveYearSavings:  annualSavings * 5,
		HoursSaved:       float64(in.Employees) * WorkHoursPerYear * rate,
		AutomatableRoles: int(float64(in.Employees)*0.2 + 0.5),
		Reinvestment:     annualSavings * 0.2,
	}
}
