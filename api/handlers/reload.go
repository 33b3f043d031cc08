package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ofwtools/ofw-mock-server/interfaces"
	"github.com/ofwtools/ofw-mock-server/internal/logger"
)

// Reload re-reads the fixture directory. Useful while iterating on captures
// without restarting the server.
func Reload(fixtures interfaces.FixtureRepository, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fixtures.Load(); err != nil {
			log.Errorf("Reload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Data reloaded"})
	}
}
