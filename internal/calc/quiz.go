package calc

import (
	"fmt"

	"github.com/asymmetric-studio/site-api/internal/models"
)

// Readiness tiers
const (
	TierHigh   = "AI Native (High Readiness)"
	TierMedium = "Process Ready (Medium Readiness)"
	TierLow    = "Foundation Needed (Low Readiness)"
)

// QuizOption is one selectable answer worth a fixed score
type QuizOption struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// QuizQuestion is one of the five fixed readiness questions
type QuizQuestion struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Options []QuizOption `json:"options"`
}

// Questions are the five readiness questions, in presentation order. Each
// answer scores 1, 3, or 5, so totals range 5–25.
var Questions = []QuizQuestion{
	{
		ID:   "data",
		Text: "How centralized is your business data?",
		Options: []QuizOption{
			{Label: "Scattered across spreadsheets & emails", Score: 1},
			{Label: "Centralized in a CRM/ERP", Score: 3},
			{Label: "Synced via APIs / Data Warehouse", Score: 5},
		},
	},
	{
		ID:   "sops",
		Text: "Are your core workflows documented?",
		Options: []QuizOption{
			{Label: "No, it's all in our heads", Score: 1},
			{Label: "Yes, we have written SOPs", Score: 3},
			{Label: "Yes, and they are strictly followed", Score: 5},
		},
	},
	{
		ID:   "volume",
		Text: "What is your monthly volume of leads/tickets?",
		Options: []QuizOption{
			{Label: "Low (< 100/mo)", Score: 1},
			{Label: "Moderate (100 - 1,000/mo)", Score: 3},
			{Label: "High (1,000+/mo)", Score: 5},
		},
	},
	{
		ID:   "tools",
		Text: "Do you use automation tools today?",
		Options: []QuizOption{
			{Label: "None (Manual)", Score: 1},
			{Label: "Basic (Zapier/Make)", Score: 3},
			{Label: "Custom Scripts / APIs", Score: 5},
		},
	},
	{
		ID:   "budget",
		Text: "What is your budget for AI transformation?",
		Options: []QuizOption{
			{Label: "Exploratory (<$5k)", Score: 1},
			{Label: "Serious ($5k - $50k)", Score: 3},
			{Label: "Strategic ($50k+)", Score: 5},
		},
	},
}

// QuizResult holds the scored quiz outcome
type QuizResult struct {
	TotalScore int    `json:"totalScore"`
	Tier       string `json:"tier"`
}

// ValidateAnswers checks that every question is answered with one of its
// option scores.
func ValidateAnswers(answers map[string]int) error {
	for _, q := range Questions {
		score, ok := answers[q.ID]
		if !ok {
			return &models.ValidationError{Field: q.ID, Message: "answer is required"}
		}
		valid := false
		for _, opt := range q.Options {
			if opt.Score == score {
				valid = true
				break
			}
		}
		if !valid {
			return &models.ValidationError{
				Field:   q.ID,
				Message: fmt.Sprintf("score %d is not a valid option", score),
			}
		}
	}
	return nil
}

// ScoreQuiz sums the answers and maps the total to a readiness tier
func ScoreQuiz(answers map[string]int) QuizResult {
	total := 0
	for _, score := range answers {
		total += score
	}
	return QuizResult{TotalScore: total, Tier: Tier(total)}
}

// Tier maps a total score to its readiness tier
func Tier(total int) string {
	switch {
	case total >= 20:
		return TierHigh
	case total >= 12:
		return TierMedium
	default:
		return TierLow
	}
}
