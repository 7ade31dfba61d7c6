package api

import (
	"net/http"
	"time"

	"github.com/asymmetric-studio/site-api/internal/config"
	"github.com/asymmetric-studio/site-api/internal/repository"
	"github.com/asymmetric-studio/site-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(repos *repository.Repositories, services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	blogHandler := NewBlogHandler(repos, log)
	leadHandler := NewLeadHandler(repos, log)
	trackHandler := NewTrackHandler(repos, log)
	authHandler := NewAuthHandler(repos, log)
	isaHandler := NewISAHandler(services, log)
	toolsHandler := NewToolsHandler(services, log)
	adminHandler := NewAdminHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// API surface
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/blog", blogHandler.ListPosts)
		apiGroup.POST("/blog", blogHandler.CreatePost)

		apiGroup.GET("/leads", leadHandler.ListLeads)
		apiGroup.POST("/leads", leadHandler.CreateLead)

		apiGroup.GET("/track", trackHandler.ListEvents)
		apiGroup.POST("/track", trackHandler.RecordEvent)

		apiGroup.POST("/auth", authHandler.Login)
		apiGroup.PUT("/auth", authHandler.Register)

		apiGroup.POST("/isa", isaHandler.Respond)

		tools := apiGroup.Group("/tools")
		{
			tools.POST("/roi", toolsHandler.UnlockROI)
			tools.POST("/quiz", toolsHandler.CompleteQuiz)
		}

		admin := apiGroup.Group("/admin")
		{
			admin.GET("/traffic", adminHandler.Traffic)
			admin.GET("/leads/export", adminHandler.ExportLeads)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "site-api",
	})
}

// metricsHandler returns collection counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		postsCount, _ := services.Report.GetCount(ctx, "posts")
		leadsCount, _ := services.Report.GetCount(ctx, "leads")
		eventsCount, _ := services.Report.GetCount(ctx, "analytics")
		usersCount, _ := services.Report.GetCount(ctx, "users")

		c.JSON(http.StatusOK, gin.H{
			"collections": gin.H{
				"posts":     postsCount,
				"leads":     leadsCount,
				"analytics": eventsCount,
				"users":     usersCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal Server Error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware tags every request with an X-Request-ID
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString("request_id")).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// clientInfo extracts the fields the analytics layer stores with an event.
// The forwarded-for header is trusted as-is; on localhost it may be ::1.
func clientInfo(c *gin.Context) service.ClientInfo {
	ip := c.GetHeader("X-Forwarded-For")
	if ip == "" {
		ip = "unknown"
	}
	userAgent := c.GetHeader("User-Agent")
	if userAgent == "" {
		userAgent = "unknown"
	}
	return service.ClientInfo{IP: ip, UserAgent: userAgent}
}
