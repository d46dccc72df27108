package handlers

import (
	"net/http"

	"fitapp/catalog"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the notification feed.
type NotificationHandler struct {
	Repo catalog.NotificationRepository
}

func NewNotificationHandler(repo catalog.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

// List returns the notification feed, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.Repo.ListNotifications()})
}

// MarkRead flags one notification as read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.Repo.MarkRead(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到通知"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
