package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/ofwtools/ofw-mock-server/interfaces"
	"github.com/ofwtools/ofw-mock-server/internal/logger"
	"github.com/ofwtools/ofw-mock-server/services/messages"
)

// ListMessages serves a page of a folder's captured messages.
func ListMessages(messageService interfaces.MessageService, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var folderID *int
		if raw := c.Query("folders"); raw != "" {
			if id, err := strconv.Atoi(raw); err == nil {
				folderID = &id
			}
		}
		page := intQuery(c, "page", 1)
		size := intQuery(c, "size", 50)
		sort := c.DefaultQuery("sort", "date")
		sortDirection := c.DefaultQuery("sortDirection", "desc")

		// sort/sortDirection are echoed to the log but never applied; the
		// fixtures replay in captured order.
		log.Debugf("List messages: folders=%v page=%d size=%d sort=%s sortDirection=%s",
			folderID, page, size, sort, sortDirection)

		paged, legacy := messageService.List(folderID, page, size, sort, sortDirection)
		if legacy != nil {
			c.JSON(http.StatusOK, legacy)
			return
		}
		c.JSON(http.StatusOK, paged)
	}
}

// GetMessage serves a single message by id.
func GetMessage(messageService interfaces.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		messageID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}

		msg, err := messageService.Get(messageID)
		if err != nil {
			if errors.Is(err, messages.ErrMessageNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, msg)
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
