package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ofwtools/ofw-mock-server/interfaces"
	"github.com/ofwtools/ofw-mock-server/internal/models"
)

// LocalStorage serves the captured localStorage snapshot the client
// bootstraps from, defaulting the auth token so the client can always log
// itself in against this server.
func LocalStorage(fixtures interfaces.FixtureRepository, authToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if snapshot := fixtures.LocalStorage(); snapshot != nil {
			c.JSON(http.StatusOK, snapshot.WithAuth(authToken))
			return
		}
		c.JSON(http.StatusOK, models.DefaultLocalStorage(authToken))
	}
}
