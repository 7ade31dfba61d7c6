package calc

import (
	"errors"
	"testing"

	"github.com/asymmetric-studio/site-api/internal/models"
)

func answersWith(scores ...int) map[string]int {
	answers := make(map[string]int, len(Questions))
	for i, q := range Questions {
		answers[q.ID] = scores[i]
	}
	return answers
}

func TestScoreQuiz_Tiers(t *testing.T) {
	tests := []struct {
		scores []int
		total  int
		tier   string
	}{
		{[]int{5, 5, 5, 5, 2}, 22, TierHigh},
		{[]int{5, 5, 5, 5, 0}, 20, TierHigh}, // boundary
		{[]int{3, 3, 3, 3, 3}, 15, TierMedium},
		{[]int{3, 3, 3, 2, 1}, 12, TierMedium}, // boundary
		{[]int{1, 1, 1, 2, 3}, 8, TierLow},
		{[]int{1, 1, 1, 1, 1}, 5, TierLow},
	}

	for _, tt := range tests {
		result := ScoreQuiz(answersWith(tt.scores...))
		if result.TotalScore != tt.total {
			t.Errorf("Scores %v: expected total %d, got %d", tt.scores, tt.total, result.TotalScore)
		}
		if result.Tier != tt.tier {
			t.Errorf("Total %d: expected tier %q, got %q", tt.total, tt.tier, result.Tier)
		}
	}
}

func TestValidateAnswers(t *testing.T) {
	if err := ValidateAnswers(answersWith(1, 3, 5, 3, 1)); err != nil {
		t.Errorf("Expected valid answers, got %v", err)
	}

	// Missing question
	partial := answersWith(1, 3, 5, 3, 1)
	delete(partial, "budget")
	var verr *models.ValidationError
	if err := ValidateAnswers(partial); !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError for missing answer, got %v", err)
	}

	// Score outside the option set
	invalid := answersWith(1, 3, 5, 3, 1)
	invalid["data"] = 4
	if err := ValidateAnswers(invalid); !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError for invalid score, got %v", err)
	}
}

func TestQuestions_Shape(t *testing.T) {
	if len(Questions) != 5 {
		t.Fatalf("Expected 5 questions, got %d", len(Questions))
	}
	for _, q := range Questions {
		if len(q.Options) != 3 {
			t.Errorf("Question %q: expected 3 options, got %d", q.ID, len(q.Options))
		}
		for _, opt := range q.Options {
			if opt.Score != 1 && opt.Score != 3 && opt.Score != 5 {
				t.Errorf("Question %q: unexpected score %d", q.ID, opt.Score)
			}
		}
	}
}
