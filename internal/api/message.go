package api

import (
	"fmt"
	"net/http"

	"chat-mvp/backend/internal/models"
	"chat-mvp/backend/internal/service"
	"chat-mvp/backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles message send and conversation fetch requests
type MessageHandler struct {
	service *service.MessageService
	logger  *logger.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(service *service.MessageService, logger *logger.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		logger:  logger,
	}
}

// SendMessage persists a message from the authenticated sender. The request
// body only carries receiver and content; sender and timestamp are set
// server-side regardless of anything the client supplies.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Error binding JSON for send message", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// Defense in depth beyond the auth middleware: an empty identity claim is
	// still a 401.
	sender := c.GetString("username")
	if sender == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	message, err := h.service.Send(sender, req.Receiver, req.Content)
	if err != nil {
		h.logger.Error("Error persisting message", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store message"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/messages/%s", message.ID))
	c.JSON(http.StatusCreated, message)
}

// GetConversation returns the full ordered conversation between the
// authenticated user and the user named in the path
func (h *MessageHandler) GetConversation(c *gin.Context) {
	currentUser := c.GetString("username")
	if currentUser == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	otherUser := c.Param("otherUser")

	messages, err := h.service.Conversation(currentUser, otherUser)
	if err != nil {
		h.logger.Error("Error fetching conversation", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversation"})
		return
	}

	if messages == nil {
		messages = []models.Message{}
	}

	c.JSON(http.StatusOK, messages)
}
