package service

import (
	"context"

	"github.com/asymmetric-studio/site-api/internal/calc"
	"github.com/asymmetric-studio/site-api/internal/models"
	"github.com/asymmetric-studio/site-api/internal/repository"
	"github.com/rs/zerolog"
)

// toolsService is the concrete implementation of ToolsService. The tools
// are pure calculators until an email is supplied; the email gates lead
// capture and the matching analytics event.
type toolsService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newToolsService creates a new ToolsService
func newToolsService(repos *repository.Repositories, log zerolog.Logger) *toolsService {
	return &toolsService{
		repos: repos,
		log:   log.With().Str("service", "tools").Logger(),
	}
}

// UnlockROI computes the ROI projection and, when an email is present,
// captures the lead and records the roi_unlock event.
func (s *toolsService) UnlockROI(ctx context.Context, email string, client ClientInfo, in calc.ROIInput) (*calc.ROIResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	result := calc.ROI(in)

	if email != "" {
		_, err := s.repos.Leads.Create(ctx, &models.LeadDraft{
			Email:  email,
			Source: models.LeadSourceROI,
			Data:   models.ROILeadData(in.Employees, in.AvgSalary, in.AutomationRate, result.AnnualSavings, result.FiveYearSavings),
		})
		if err != nil {
			return nil, err
		}

		// The event is a beacon: a failure to record it never fails the unlock
		if _, err := s.repos.Analytics.Record(ctx, &models.EventDraft{
			Type:      models.EventTypeROIUnlock,
			Path:      "/tools/roi-calculator",
			IP:        client.IP,
			UserAgent: client.UserAgent,
			Metadata:  map[string]interface{}{"annualSavings": result.AnnualSavings},
		}); err != nil {
			s.log.Warn().Err(err).Msg("Failed to record roi_unlock event")
		}
	}

	return &result, nil
}

// CompleteQuiz scores the readiness quiz and, when an email is present,
// captures the lead and records the quiz_complete event.
func (s *toolsService) CompleteQuiz(ctx context.Context, email string, client ClientInfo, answers map[string]int) (*calc.QuizResult, error) {
	if err := calc.ValidateAnswers(answers); err != nil {
		return nil, err
	}
	result := calc.ScoreQuiz(answers)

	if email != "" {
		_, err := s.repos.Leads.Create(ctx, &models.LeadDraft{
			Email:  email,
			Source: models.LeadSourceQuiz,
			Data:   models.QuizLeadData(answers, result.TotalScore, result.Tier),
		})
		if err != nil {
			return nil, err
		}

		if _, err := s.repos.Analytics.Record(ctx, &models.EventDraft{
			Type:      models.EventTypeQuizComplete,
			Path:      "/tools/readiness-quiz",
			IP:        client.IP,
			UserAgent: client.UserAgent,
			Metadata:  map[string]interface{}{"totalScore": result.TotalScore, "tier": result.Tier},
		}); err != nil {
			s.log.Warn().Err(err).Msg("Failed to record quiz_complete event")
		}
	}

	return &result, nil
}
