package api

import (
	"errors"
	"net/http"

	"github.com/asymmetric-studio/site-api/internal/calc"
	"github.com/asymmetric-studio/site-api/internal/models"
	"github.com/asymmetric-studio/site-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ToolsHandler handles the calculator/quiz tool endpoints
type ToolsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewToolsHandler creates a new ToolsHandler
func NewToolsHandler(services *service.Services, log zerolog.Logger) *ToolsHandler {
	return &ToolsHandler{
		services: services,
		log:      log.With().Str("handler", "tools").Logger(),
	}
}

type roiRequest struct {
	Email          string `json:"email"`
	Employees      int    `json:"employees"`
	AvgSalary      int    `json:"avgSalary"`
	AutomationRate int    `json:"automationRate"`
}

// UnlockROI handles POST /api/tools/roi. Without an email it is a pure
// calculation; with one it also captures the lead and the unlock event.
func (h *ToolsHandler) UnlockROI(c *gin.Context) {
	var req roiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.services.Tools.UnlockROI(c.Request.Context(), req.Email, clientInfo(c), calc.ROIInput{
		Employees:      req.Employees,
		AvgSalary:      req.AvgSalary,
		AutomationRate: req.AutomationRate,
	})
	if err != nil {
		h.respondToolError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

type quizRequest struct {
	Email   string         `json:"email"`
	Answers map[string]int `json:"answers"`
}

// CompleteQuiz handles POST /api/tools/quiz
func (h *ToolsHandler) CompleteQuiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.services.Tools.CompleteQuiz(c.Request.Context(), req.Email, clientInfo(c), req.Answers)
	if err != nil {
		h.respondToolError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

func (h *ToolsHandler) respondToolError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}
	h.log.Error().Err(err).Msg("Tool request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}
