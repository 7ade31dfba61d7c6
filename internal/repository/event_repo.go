package repository

import (
	"context"
	"time"

	"github.com/asymmetric-studio/site-api/internal/id"
	"github.com/asymmetric-studio/site-api/internal/models"
	"github.com/asymmetric-studio/site-api/internal/store"
	"github.com/rs/zerolog"
)

// analyticsRepo is the flat-file implementation of AnalyticsRepository
type analyticsRepo struct {
	events    *store.Collection[models.AnalyticsEvent]
	maxEvents int
	log       zerolog.Logger
}

// NewAnalyticsRepo creates a new AnalyticsRepository capped at maxEvents
// stored entries.
func NewAnalyticsRepo(events *store.Collection[models.AnalyticsEvent], maxEvents int, log zerolog.Logger) AnalyticsRepository {
	return &analyticsRepo{
		events:    events,
		maxEvents: maxEvents,
		log:       log.With().Str("repository", "analytics").Logger(),
	}
}

// List returns all events, newest first
func (r *analyticsRepo) List(ctx context.Context) ([]models.AnalyticsEvent, error) {
	return r.events.ReadAll()
}

// Record stamps and prepends an event, then truncates the tail so the
// collection never exceeds the cap. Prune-after-insert: List can never
// observe more than maxEvents entries.
func (r *analyticsRepo) Record(ctx context.Context, draft *models.EventDraft) (*models.AnalyticsEvent, error) {
	token, err := id.New()
	if err != nil {
		return nil, err
	}

	event := models.AnalyticsEvent{
		ID:         token,
		Type:       draft.Type,
		Path:       draft.Path,
		IP:         draft.IP,
		UserAgent:  draft.UserAgent,
		Referrer:   draft.Referrer,
		DeviceType: draft.DeviceType,
		Metadata:   draft.Metadata,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	events, err := r.events.ReadAll()
	if err != nil {
		return nil, err
	}
	events = append([]models.AnalyticsEvent{event}, events...)
	if len(events) > r.maxEvents {
		events = events[:r.maxEvents]
	}

	if err := r.events.WriteAll(events); err != nil {
		return nil, err
	}
	return &event, nil
}
