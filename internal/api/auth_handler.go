package api

import (
	"errors"
	"net/http"

	"github.com/asymmetric-studio/site-api/internal/models"
	"github.com/asymmetric-studio/site-api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(repos *repository.Repositories, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		repos: repos,
		log:   log.With().Str("handler", "auth").Logger(),
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth
func (h *AuthHandler) Login(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	user, err := h.repos.Users.Authenticate(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to authenticate")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}

// Register handles PUT /api/auth
func (h *AuthHandler) Register(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := h.repos.Users.Register(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, models.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already exists"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to register user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}
