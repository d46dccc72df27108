package handlers

import (
	"errors"
	"net/http"

	"fitapp/catalog"
	"fitapp/models"
	"fitapp/services/intelligence"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the captain chat.
type ChatHandler struct {
	Svc intelligence.ChatService
}

func NewChatHandler(svc intelligence.ChatService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// Ask forwards the user's question to the captain. The reply text is
// always displayable; provider failures surface as the fallback string,
// never as an error status.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	reply, err := h.Svc.Ask(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "找不到活動"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, reply)
}

// History returns the conversation transcript for a chat session.
func (h *ChatHandler) History(c *gin.Context) {
	chatCtx, err := h.Svc.History(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, chatCtx)
}
