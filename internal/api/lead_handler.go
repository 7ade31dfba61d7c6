package api

import (
	"errors"
	"net/http"

	"github.com/asymmetric-studio/site-api/internal/models"
	"github.com/asymmetric-studio/site-api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// LeadHandler handles lead capture endpoints
type LeadHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewLeadHandler creates a new LeadHandler
func NewLeadHandler(repos *repository.Repositories, log zerolog.Logger) *LeadHandler {
	return &LeadHandler{
		repos: repos,
		log:   log.With().Str("handler", "leads").Logger(),
	}
}

// ListLeads handles GET /api/leads
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.repos.Leads.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list leads")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

// CreateLead handles POST /api/leads
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var draft models.LeadDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email required"})
		return
	}

	if _, err := h.repos.Leads.Create(c.Request.Context(), &draft); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email required"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to create lead")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
