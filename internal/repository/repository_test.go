package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/asymmetric-studio/site-api/internal/config"
	"github.com/asymmetric-studio/site-api/internal/models"
	"github.com/asymmetric-studio/site-api/internal/repository"
	"github.com/asymmetric-studio/site-api/internal/store"
	"github.com/rs/zerolog"
)

func setupRepos(t *testing.T) (*repository.Repositories, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Store:     config.StoreConfig{DataDir: dir},
		Analytics: config.AnalyticsConfig{MaxEvents: 1000},
	}
	return repository.New(cfg, zerolog.Nop()), dir
}

func TestPostRepo_SlugDerivation(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	tests := []struct {
		title string
		slug  string
	}{
		{"Hello World", "hello-world"},
		{"Hello, World!", "hello-world-"},
		{"  AI & Automation: 2025 Outlook  ", "-ai-automation-2025-outlook-"},
		{"already-slugged", "already-slugged"},
	}

	for _, tt := range tests {
		post, err := repos.Posts.Save(ctx, &models.PostDraft{Title: tt.title, Content: "body"})
		if err != nil {
			t.Fatalf("Save(%q) failed: %v", tt.title, err)
		}
		if post.Slug != tt.slug {
			t.Errorf("Slug for %q: expected %q, got %q", tt.title, tt.slug, post.Slug)
		}
	}
}

func TestPostRepo_MissingFields(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	var verr *models.ValidationError
	if _, err := repos.Posts.Save(ctx, &models.PostDraft{Content: "body"}); !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError for missing title, got %v", err)
	}
	if _, err := repos.Posts.Save(ctx, &models.PostDraft{Title: "title"}); !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError for missing content, got %v", err)
	}
}

func TestPostRepo_NewestFirst(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	if _, err := repos.Posts.Save(ctx, &models.PostDraft{Title: "First", Content: "a"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := repos.Posts.Save(ctx, &models.PostDraft{Title: "Second", Content: "b"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	posts, err := repos.Posts.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("Expected 2 posts, got %d", len(posts))
	}
	if posts[0].Title != "Second" || posts[1].Title != "First" {
		t.Errorf("Expected newest-first ordering, got %q then %q", posts[0].Title, posts[1].Title)
	}
}

func TestPostRepo_UpsertByID(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	created, err := repos.Posts.Save(ctx, &models.PostDraft{Title: "Original", Content: "a"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	updated, err := repos.Posts.Save(ctx, &models.PostDraft{ID: created.ID, Title: "Revised", Content: "b"})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("Expected id %q to be kept, got %q", created.ID, updated.ID)
	}
	if updated.Date != created.Date {
		t.Errorf("Expected creation date to be immutable, got %q vs %q", updated.Date, created.Date)
	}

	posts, err := repos.Posts.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("Expected upsert to replace in place, got %d posts", len(posts))
	}
	if posts[0].Title != "Revised" {
		t.Errorf("Expected revised title, got %q", posts[0].Title)
	}
}

// Create is not idempotent: the same draft twice makes two records with two
// distinct ids.
func TestPostRepo_DuplicateDraftsAreNotDeduped(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	draft := &models.PostDraft{Title: "Same Title", Content: "same body"}
	first, err := repos.Posts.Save(ctx, draft)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, err := repos.Posts.Save(ctx, draft)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("Expected distinct ids, both were %q", first.ID)
	}
	if first.Slug != second.Slug {
		t.Errorf("Colliding titles should produce colliding slugs, got %q vs %q", first.Slug, second.Slug)
	}

	posts, _ := repos.Posts.List(ctx)
	if len(posts) != 2 {
		t.Errorf("Expected 2 records, got %d", len(posts))
	}
}

func TestPostRepo_MalformedFileIsAnError(t *testing.T) {
	repos, dir := setupRepos(t)
	ctx := context.Background()

	if err := os.WriteFile(filepath.Join(dir, "posts.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := repos.Posts.List(ctx); err == nil {
		t.Error("Expected error for malformed posts collection")
	}
}

func TestLeadRepo_Create(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	var verr *models.ValidationError
	if _, err := repos.Leads.Create(ctx, &models.LeadDraft{Source: "Newsletter"}); !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError for missing email, got %v", err)
	}

	lead, err := repos.Leads.Create(ctx, &models.LeadDraft{
		Email:  "prospect@example.com",
		Source: models.LeadSourceROI,
		Data:   map[string]interface{}{"annualSavings": 180000.0},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if lead.ID == "" || lead.Timestamp == "" {
		t.Errorf("Expected generated id and timestamp, got %+v", lead)
	}

	older, err := repos.Leads.Create(ctx, &models.LeadDraft{Email: "second@example.com"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	leads, err := repos.Leads.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("Expected 2 leads, got %d", len(leads))
	}
	if leads[0].ID != older.ID {
		t.Errorf("Expected newest-first ordering, got %q first", leads[0].ID)
	}
}

func TestAnalyticsRepo_CapInvariant(t *testing.T) {
	dir := t.TempDir()
	events := store.NewCollection[models.AnalyticsEvent](filepath.Join(dir, "analytics.json"), zerolog.Nop())
	repo := repository.NewAnalyticsRepo(events, 5, zerolog.Nop())
	ctx := context.Background()

	var newest *models.AnalyticsEvent
	for i := 0; i < 8; i++ {
		event, err := repo.Record(ctx, &models.EventDraft{
			Type: models.EventTypePageview,
			Path: fmt.Sprintf("/page-%d", i),
		})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		newest = event

		stored, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(stored) > 5 {
			t.Fatalf("Cap violated after %d records: %d stored", i+1, len(stored))
		}
	}

	stored, _ := repo.List(ctx)
	if len(stored) != 5 {
		t.Fatalf("Expected 5 stored events, got %d", len(stored))
	}
	if stored[0].ID != newest.ID {
		t.Errorf("Expected newest event at the head, got %q", stored[0].ID)
	}
	for _, e := range stored {
		if e.Path == "/page-0" || e.Path == "/page-1" || e.Path == "/page-2" {
			t.Errorf("Expected oldest events to be pruned from the tail, found %q", e.Path)
		}
	}
}

func TestAnalyticsRepo_RecordEnrichment(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	event, err := repos.Analytics.Record(ctx, &models.EventDraft{
		Type:       models.EventTypeCopy,
		Path:       "/blog/some-post",
		IP:         "203.0.113.9",
		UserAgent:  "test-agent",
		Referrer:   "Direct",
		DeviceType: "Desktop",
		Metadata:   map[string]interface{}{"text": "copied snippet"},
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if event.ID == "" || event.Timestamp == "" {
		t.Errorf("Expected generated id and timestamp, got %+v", event)
	}
	if event.Type != models.EventTypeCopy {
		t.Errorf("Expected caller-supplied type to be stored, got %q", event.Type)
	}
}

func TestUserRepo_Authenticate(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	if _, err := repos.Users.Register(ctx, "admin@example.com", "hunter2"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := repos.Users.Authenticate(ctx, "admin@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user == nil {
		t.Fatal("Expected matching user")
	}
	if user.Role != "user" {
		t.Errorf("Expected role \"user\", got %q", user.Role)
	}

	// Right email, wrong password
	user, err = repos.Users.Authenticate(ctx, "admin@example.com", "wrong")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user != nil {
		t.Error("Expected no user for wrong password")
	}

	// Right password, wrong email
	user, err = repos.Users.Authenticate(ctx, "other@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user != nil {
		t.Error("Expected no user for wrong email")
	}
}

func TestUserRepo_RegisterConflict(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	if _, err := repos.Users.Register(ctx, "dup@example.com", "first"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := repos.Users.Register(ctx, "dup@example.com", "second"); !errors.Is(err, models.ErrUserExists) {
		t.Errorf("Expected ErrUserExists, got %v", err)
	}
}

// A malformed users file reads as an empty collection; the other
// collections surface the parse error instead. Deliberate asymmetry.
func TestUserRepo_MalformedFileIsEmpty(t *testing.T) {
	repos, dir := setupRepos(t)
	ctx := context.Background()

	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	users, err := repos.Users.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("Expected empty collection for malformed users file, got %d", len(users))
	}

	// Registration still works; the write replaces the corrupt file
	if _, err := repos.Users.Register(ctx, "fresh@example.com", "pw"); err != nil {
		t.Fatalf("Register after corruption failed: %v", err)
	}
}
