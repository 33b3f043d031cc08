package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ofwtools/ofw-mock-server/api/handlers"
	"github.com/ofwtools/ofw-mock-server/api/middleware"
	"github.com/ofwtools/ofw-mock-server/config"
	"github.com/ofwtools/ofw-mock-server/internal/logger"
	"github.com/ofwtools/ofw-mock-server/internal/repository"
	"github.com/ofwtools/ofw-mock-server/services"
)

// Paths are exactly what the OFW client was captured calling; changing them
// would break replay.
var availableEndpoints = []string{
	"/health",
	"/ofw/appv2/localstorage.json",
	"/pub/v1/messageFolders",
	"/pub/v3/messages",
	"/pub/v3/messages/<id>",
	"/reload",
}

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(r *gin.Engine, cfg *config.AppConfig, s *services.Services, repos *repository.Repositories, log logger.Logger) {
	if s == nil {
		panic("Services cannot be nil")
	}
	if repos == nil {
		panic("Repositories cannot be nil")
	}

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Panic serving %s: %v", c.Request.URL.Path, recovered)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": "unexpected failure handling request",
		})
	}))
	r.Use(middleware.RequestIDMiddleware(log, cfg.Debug))

	// Open endpoints: health, the client bootstrap snapshot, and reload.
	r.GET("/health", handlers.HealthCheck(repos.FixtureRepository))
	r.GET("/ofw/appv2/localstorage.json", handlers.LocalStorage(repos.FixtureRepository, cfg.AuthToken))
	r.POST("/reload", handlers.Reload(repos.FixtureRepository, log))

	bearerAuth := middleware.BearerAuthMiddleware(middleware.BearerAuthConfig{
		ExpectedToken: cfg.AuthToken,
		Strict:        cfg.StrictAuth,
	}, log)

	// Everything the real API gates behind a session token.
	pub := r.Group("/pub")
	pub.Use(bearerAuth)
	pub.Use(middleware.ClientInfoMiddleware(log))
	{
		pub.GET("/v1/messageFolders", handlers.GetFolders(s.FolderService))
		pub.GET("/v3/messages", handlers.ListMessages(s.MessageService, log))
		pub.GET("/v3/messages/:id", handlers.GetMessage(s.MessageService))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":               "Endpoint not found",
			"path":                c.Request.URL.Path,
			"available_endpoints": availableEndpoints,
		})
	})
}
