package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ofwtools/ofw-mock-server/internal/logger"
)

// ClientInfoMiddleware observes the ofw-client/ofw-version identification
// headers. They are logged for diagnostics only and never gate a request.
func ClientInfoMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := c.GetHeader("ofw-client")
		version := c.GetHeader("ofw-version")
		if client != "" || version != "" {
			log.Infof("OFW Headers - Client: %s, Version: %s", client, version)
		}
		c.Next()
	}
}
