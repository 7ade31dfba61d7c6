package api

import (
	"net/http"

	"github.com/asymmetric-studio/site-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ISAHandler handles the inside-sales-agent endpoint
type ISAHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewISAHandler creates a new ISAHandler
func NewISAHandler(services *service.Services, log zerolog.Logger) *ISAHandler {
	return &ISAHandler{
		services: services,
		log:      log.With().Str("handler", "isa").Logger(),
	}
}

// Respond handles POST /api/isa
func (h *ISAHandler) Respond(c *gin.Context) {
	var req service.ISARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate response"})
		return
	}

	reply, err := h.services.ISA.Respond(c.Request.Context(), &req)
	if err != nil {
		h.log.Error().Err(err).Msg("ISA provider call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate response"})
		return
	}

	c.JSON(http.StatusOK, reply)
}
