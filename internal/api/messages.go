package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cooksync/backend/internal/store"
)

type SendMessageRequest struct {
	RecipientName   string `json:"recipientName" binding:"required"`
	RecipientAvatar string `json:"recipientAvatar"`
	Content         string `json:"content" binding:"required"`
}

// MessageHandler serves the one-directional message log and its derived
// conversation summaries.
type MessageHandler struct {
	store *store.Store
}

func NewMessageHandler(st *store.Store) *MessageHandler {
	return &MessageHandler{store: st}
}

// RegisterRoutes registers the authenticated messaging routes.
func (h *MessageHandler) RegisterRoutes(router *gin.RouterGroup) {
	conversations := router.Group("/conversations")
	{
		conversations.GET("", h.ListConversations)
		conversations.DELETE("/:recipientId", h.DeleteConversation)
		conversations.GET("/:recipientId/messages", h.ListMessages)
		conversations.POST("/:recipientId/messages", h.SendMessage)
	}
}

func (h *MessageHandler) ListConversations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"conversations": h.store.Conversations()})
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.store.Messages(c.Param("recipientId"))})
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	msg := h.store.SendMessage(c.Param("recipientId"), req.RecipientName, req.RecipientAvatar, req.Content)
	c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) DeleteConversation(c *gin.Context) {
	recipientID := c.Param("recipientId")
	h.store.DeleteConversation(recipientID)
	c.JSON(http.StatusOK, gin.H{
		"message":     "Conversation deleted successfully",
		"recipientId": recipientID,
	})
}
