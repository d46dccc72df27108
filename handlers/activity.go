package handlers

import (
	"errors"
	"net/http"

	"fitapp/catalog"
	"fitapp/models"
	"fitapp/services/activity"

	"github.com/gin-gonic/gin"
)

// ActivityHandler exposes pickup activities, joining and leave requests.
type ActivityHandler struct {
	Svc activity.Service
}

func NewActivityHandler(svc activity.Service) *ActivityHandler {
	return &ActivityHandler{Svc: svc}
}

// List returns activities, optionally filtered by sport.
func (h *ActivityHandler) List(c *gin.Context) {
	sport := models.SportType(c.Query("sport"))
	c.JSON(http.StatusOK, gin.H{"activities": h.Svc.List(sport)})
}

// Get returns one activity or a not-found message.
func (h *ActivityHandler) Get(c *gin.Context) {
	a, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到活動"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// Join adds the visitor to an activity after a capacity check.
func (h *ActivityHandler) Join(c *gin.Context) {
	a, err := h.Svc.Join(c.Param("id"))
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到活動"})
	case errors.Is(err, activity.ErrActivityFull):
		c.JSON(http.StatusConflict, gin.H{"error": "活動已額滿"})
	case errors.Is(err, activity.ErrAlreadyJoined):
		c.JSON(http.StatusConflict, gin.H{"error": "已加入此活動"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	default:
		c.JSON(http.StatusOK, a)
	}
}

// My lists the activities the visitor joined this session.
func (h *ActivityHandler) My(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"activities": h.Svc.MyActivities()})
}

// SubmitLeave records a leave request for one class session.
func (h *ActivityHandler) SubmitLeave(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingId" binding:"required"`
		SessionOn string `json:"sessionOn" binding:"required"`
		Reason    string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req, err := h.Svc.SubmitLeave(input.BookingID, input.SessionOn, input.Reason)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, req)
}
