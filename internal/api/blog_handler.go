package api

import (
	"errors"
	"net/http"

	"github.com/asymmetric-studio/site-api/internal/models"
	"github.com/asymmetric-studio/site-api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BlogHandler handles blog post endpoints
type BlogHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(repos *repository.Repositories, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		repos: repos,
		log:   log.With().Str("handler", "blog").Logger(),
	}
}

// ListPosts handles GET /api/blog
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.repos.Posts.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost handles POST /api/blog. A draft carrying the id of an existing
// post replaces it in place.
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var draft models.PostDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	post, err := h.repos.Posts.Save(c.Request.Context(), &draft)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to save post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}
