package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"actioninbox/internal/repository"
)

type MessageQueryHandler struct {
	messageRepo *repository.MessageRepository
}

func NewMessageQueryHandler(messageRepo *repository.MessageRepository) *MessageQueryHandler {
	return &MessageQueryHandler{
		messageRepo: messageRepo,
	}
}

// GetMessages handles GET /inbox/messages
func (h *MessageQueryHandler) GetMessages(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	messages, err := h.messageRepo.ListMessagesWithAnalysis(c.Request.Context(), userID.(int))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
	})
}

// GetMessage handles GET /inbox/messages/:id
func (h *MessageQueryHandler) GetMessage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	message, err := h.messageRepo.FindRawByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}
	if message.UserID != userID.(int) {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         message.ID,
		"message_id": message.MessageID,
		"subject":    message.Subject,
		"from_email": message.FromEmail,
		"body":       message.Body,
		"status":     message.Status,
		"created_at": message.CreatedAt,
	})
}
