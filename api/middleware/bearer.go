package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ofwtools/ofw-mock-server/internal/logger"
)

const bearerPrefix = "Bearer "

// BearerAuthConfig holds the configuration for bearer token authentication.
type BearerAuthConfig struct {
	// ExpectedToken is only enforced when Strict is set. By default the
	// server accepts any well-formed token so clients can exercise their
	// auth-header code path without a real credential.
	ExpectedToken string
	Strict        bool
}

// BearerAuthMiddleware creates a middleware function to validate the
// Authorization header the way the upstream API does.
func BearerAuthMiddleware(config BearerAuthConfig, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "No Authorization header",
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid Authorization header format",
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if config.Strict && token != config.ExpectedToken {
			log.Warnf("Rejected bearer token in strict mode")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
