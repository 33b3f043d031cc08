package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ofwtools/ofw-mock-server/interfaces"
)

// GetFolders returns the message folder listing.
func GetFolders(folderService interfaces.FolderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		includeCounts := strings.EqualFold(c.DefaultQuery("includeFolderCounts", "true"), "true")
		c.JSON(http.StatusOK, folderService.Resolve(includeCounts))
	}
}
