package repository

import (
	"context"
	"time"

	"github.com/asymmetric-studio/site-api/internal/id"
	"github.com/asymmetric-studio/site-api/internal/models"
	"github.com/asymmetric-studio/site-api/internal/store"
	"github.com/rs/zerolog"
)

// leadRepo is the flat-file implementation of LeadRepository
type leadRepo struct {
	leads *store.Collection[models.Lead]
	log   zerolog.Logger
}

// NewLeadRepo creates a new LeadRepository
func NewLeadRepo(leads *store.Collection[models.Lead], log zerolog.Logger) LeadRepository {
	return &leadRepo{
		leads: leads,
		log:   log.With().Str("repository", "leads").Logger(),
	}
}

// List returns all leads, newest first
func (r *leadRepo) List(ctx context.Context) ([]models.Lead, error) {
	return r.leads.ReadAll()
}

// Create captures a lead and prepends it to the collection. Leads are never
// mutated or deleted afterwards.
func (r *leadRepo) Create(ctx context.Context, draft *models.LeadDraft) (*models.Lead, error) {
	if draft.Email == "" {
		return nil, models.NewValidationError("email")
	}

	token, err := id.New()
	if err != nil {
		return nil, err
	}

	lead := models.Lead{
		ID:        token,
		Email:     draft.Email,
		Source:    draft.Source,
		Data:      draft.Data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	leads, err := r.leads.ReadAll()
	if err != nil {
		return nil, err
	}
	leads = append([]models.Lead{lead}, leads...)

	if err := r.leads.WriteAll(leads); err != nil {
		return nil, err
	}

	r.log.Info().Str("id", lead.ID).Str("source", lead.Source).Msg("Lead captured")
	return &lead, nil
}
