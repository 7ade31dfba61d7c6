package repository

import (
	"context"
	"path/filepath"

	"github.com/asymmetric-studio/site-api/internal/config"
	"github.com/asymmetric-studio/site-api/internal/models"
	"github.com/asymmetric-studio/site-api/internal/store"
	"github.com/rs/zerolog"
)

// PostRepository defines the interface for blog post operations
type PostRepository interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	Save(ctx context.Context, draft *models.PostDraft) (*models.BlogPost, error)
}

// LeadRepository defines the interface for lead capture operations
type LeadRepository interface {
	List(ctx context.Context) ([]models.Lead, error)
	Create(ctx context.Context, draft *models.LeadDraft) (*models.Lead, error)
}

// AnalyticsRepository defines the interface for analytics event operations
type AnalyticsRepository interface {
	List(ctx context.Context) ([]models.AnalyticsEvent, error)
	Record(ctx context.Context, draft *models.EventDraft) (*models.AnalyticsEvent, error)
}

// UserRepository defines the interface for account operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, password string) (*models.User, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Posts     PostRepository
	Leads     LeadRepository
	Analytics AnalyticsRepository
	Users     UserRepository
}

// New creates all repositories backed by flat-file collections under the
// configured data directory.
func New(cfg *config.Config, log zerolog.Logger) *Repositories {
	dir := cfg.Store.DataDir
	return &Repositories{
		Posts: NewPostRepo(
			store.NewCollection[models.BlogPost](filepath.Join(dir, "posts.json"), log), log),
		Leads: NewLeadRepo(
			store.NewCollection[models.Lead](filepath.Join(dir, "leads.json"), log), log),
		Analytics: NewAnalyticsRepo(
			store.NewCollection[models.AnalyticsEvent](filepath.Join(dir, "analytics.json"), log),
			cfg.Analytics.MaxEvents, log),
		// The users collection tolerates a malformed file; the others do not.
		Users: NewUserRepo(
			store.NewCollection[models.User](filepath.Join(dir, "users.json"), log, store.WithLenientParse()), log),
	}
}
