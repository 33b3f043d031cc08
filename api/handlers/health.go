package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ofwtools/ofw-mock-server/interfaces"
)

// HealthCheck reports what fixture categories are currently loaded.
func HealthCheck(fixtures interfaces.FixtureRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := fixtures.Stats()
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "ofw-mock-server",
			"data_loaded": gin.H{
				"folders":       stats.FoldersLoaded,
				"messages":      stats.MessageFolderCount > 0,
				"full_messages": stats.FullMessageCount > 0,
			},
		})
	}
}
