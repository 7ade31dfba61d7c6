package repository

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/asymmetric-studio/site-api/internal/id"
	"github.com/asymmetric-studio/site-api/internal/models"
	"github.com/asymmetric-studio/site-api/internal/store"
	"github.com/rs/zerolog"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// postRepo is the flat-file implementation of PostRepository
type postRepo struct {
	posts *store.Collection[models.BlogPost]
	log   zerolog.Logger
}

// NewPostRepo creates a new PostRepository
func NewPostRepo(posts *store.Collection[models.BlogPost], log zerolog.Logger) PostRepository {
	return &postRepo{
		posts: posts,
		log:   log.With().Str("repository", "posts").Logger(),
	}
}

// List returns all posts in stored order (newest-first by construction)
func (r *postRepo) List(ctx context.Context) ([]models.BlogPost, error) {
	return r.posts.ReadAll()
}

// Save creates a post, or replaces it in place when the draft carries the id
// of an existing post. New posts are prepended so the collection stays
// newest-first.
func (r *postRepo) Save(ctx context.Context, draft *models.PostDraft) (*models.BlogPost, error) {
	if draft.Title == "" {
		return nil, models.NewValidationError("title")
	}
	if draft.Content == "" {
		return nil, models.NewValidationError("content")
	}

	postID := draft.ID
	if postID == "" {
		token, err := id.New()
		if err != nil {
			return nil, err
		}
		postID = token
	}

	post := models.BlogPost{
		ID:      postID,
		Title:   draft.Title,
		Slug:    Slugify(draft.Title),
		Content: draft.Content,
		Excerpt: draft.Excerpt,
		Image:   draft.Image,
		Tags:    draft.Tags,
		Author:  draft.Author,
		Date:    time.Now().UTC().Format(time.RFC3339),
	}

	posts, err := r.posts.ReadAll()
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range posts {
		if posts[i].ID == post.ID {
			// Upsert-by-id keeps the original creation date
			post.Date = posts[i].Date
			posts[i] = post
			replaced = true
			break
		}
	}
	if !replaced {
		posts = append([]models.BlogPost{post}, posts...)
	}

	if err := r.posts.WriteAll(posts); err != nil {
		return nil, err
	}

	r.log.Info().Str("id", post.ID).Str("slug", post.Slug).Bool("replaced", replaced).Msg("Post saved")
	return &post, nil
}

// Slugify lowercases the title and collapses every run of non-alphanumeric
// characters to a single hyphen. Uniqueness is not enforced: colliding
// titles produce colliding slugs and the first match wins on lookup.
func Slugify(title string) string {
	return slugPattern.ReplaceAllString(strings.ToLower(title), "-")
}
