package models

// Known lead sources. Source is free text; these are the values the bundled
// tools submit and the admin export knows how to summarize.
const (
	LeadSourceROI  = "ROI Calculator"
	LeadSourceQuiz = "Readiness Quiz"
)

// Lead represents a captured prospect identity plus tool-specific context
type Lead struct {
	ID        string                 `json:"id"`
	Email     string                 `json:"email"`
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// LeadDraft is the caller-supplied shape for creating a lead
type LeadDraft struct {
	Email  string                 `json:"email"`
	Source string                 `json:"source"`
	Data   map[string]interface{} `json:"data,omitempty"`
}

// ROILeadData builds the data payload the ROI calculator contracts with the
// admin display logic.
func ROILeadData(employees int, avgSalary int, automationRate int, annualSavings, fiveYearSavings float64) map[string]interface{} {
	return map[string]interface{}{
		"employees":       employees,
		"avgSalary":       avgSalary,
		"automationRate":  automationRate,
		"annualSavings":   annualSavings,
		"fiveYearSavings": fiveYearSavings,
	}
}

// QuizLeadData builds the data payload the readiness quiz contracts with the
// admin display logic.
func QuizLeadData(answers map[string]int, totalScore int, tier string) map[string]interface{} {
	return map[string]interface{}{
		"answers":    answers,
		"totalScore": totalScore,
		"tier":       tier,
	}
}
