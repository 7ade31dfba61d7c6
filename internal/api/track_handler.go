package api

import (
	"net/http"

	"github.com/asymmetric-studio/site-api/internal/models"
	"github.com/asymmetric-studio/site-api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TrackHandler handles analytics tracking endpoints
type TrackHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewTrackHandler creates a new TrackHandler
func NewTrackHandler(repos *repository.Repositories, log zerolog.Logger) *TrackHandler {
	return &TrackHandler{
		repos: repos,
		log:   log.With().Str("handler", "track").Logger(),
	}
}

// ListEvents handles GET /api/track
func (h *TrackHandler) ListEvents(c *gin.Context) {
	events, err := h.repos.Analytics.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// RecordEvent handles POST /api/track. The body usually arrives from the
// Beacon API, so it is parsed as JSON regardless of content type, and the
// server enriches it with the client IP and user agent.
func (h *TrackHandler) RecordEvent(c *gin.Context) {
	var draft models.EventDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	client := clientInfo(c)
	draft.IP = client.IP
	draft.UserAgent = client.UserAgent

	if _, err := h.repos.Analytics.Record(c.Request.Context(), &draft); err != nil {
		h.log.Error().Err(err).Msg("Failed to record event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
