package api

import (
	"net/http"
	"time"

	"github.com/asymmetric-studio/site-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminHandler handles admin aggregation endpoints
type AdminHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// Traffic handles GET /api/admin/traffic
func (h *AdminHandler) Traffic(c *gin.Context) {
	report, err := h.services.Report.TrafficHistogram(c.Request.Context(), time.Now())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build traffic histogram")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportLeads handles GET /api/admin/leads/export
func (h *AdminHandler) ExportLeads(c *gin.Context) {
	if err := h.services.Report.StreamLeadsCSV(c.Request.Context(), c.Writer); err != nil {
		h.log.Error().Err(err).Msg("Leads export failed")
		// Headers may already be out; nothing sensible to send after that
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
	}
}
