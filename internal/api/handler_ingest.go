package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"actioninbox/internal/inbox"
	"actioninbox/internal/service"
)

type IngestHandler struct {
	ingestService *service.IngestService
}

func NewIngestHandler(ingestService *service.IngestService) *IngestHandler {
	return &IngestHandler{
		ingestService: ingestService,
	}
}

// IngestMessage handles POST /inbox/messages
func (h *IngestHandler) IngestMessage(c *gin.Context) {
	var message inbox.EmailData
	if err := c.ShouldBindJSON(&message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	rawID, err := h.ingestService.StoreAndPublish(c.Request.Context(), userID.(int), &message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message_raw_id": rawID,
		"status":         "queued",
	})
}
