package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fitapp/appstate"
	"fitapp/models"
	"fitapp/services/reservation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler exposes the venue reservation flow.
type ReservationHandler struct {
	Svc     reservation.Service
	Catalog reservation.SlotCatalog
	App     *appstate.AppState
	Logger  *zap.Logger
}

func NewReservationHandler(svc reservation.Service, cat reservation.SlotCatalog, app *appstate.AppState, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Svc: svc, Catalog: cat, App: app, Logger: logger}
}

// sessionView wraps a session with its derived projections. The stage and
// total are recomputed on every response, never stored.
func sessionView(sess models.ReservationSession) gin.H {
	return gin.H{
		"session": sess,
		"stage":   sess.Selection.Stage(),
		"total":   sess.Total(),
	}
}

func (h *ReservationHandler) respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservation.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, reservation.ErrUnknownSport),
		errors.Is(err, reservation.ErrInvalidDate),
		errors.Is(err, reservation.ErrIncompleteSelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("Reservation operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// StartSession creates a new reservation session.
func (h *ReservationHandler) StartSession(c *gin.Context) {
	sess, err := h.Svc.StartSession(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

// GetSession returns the live session with derived stage and total.
func (h *ReservationHandler) GetSession(c *gin.Context) {
	sess, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

// ListSlots returns the slot grid for a sport.
func (h *ReservationHandler) ListSlots(c *gin.Context) {
	sport := models.SportType(c.Query("sport"))
	c.JSON(http.StatusOK, gin.H{"slots": h.Catalog.ListSlots(sport)})
}

// GetCalendar returns the month grid for the viewed year/month.
func (h *ReservationHandler) GetCalendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}
	c.JSON(http.StatusOK, reservation.MonthGrid(year, time.Month(month), time.Now()))
}

// SelectSport sets the selection's sport.
func (h *ReservationHandler) SelectSport(c *gin.Context) {
	var input struct {
		Sport models.SportType `json:"sport" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := h.Svc.SelectSport(c.Request.Context(), c.Param("sessionID"), input.Sport)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

// SelectDay sets the selection's date. Past days leave the session untouched.
func (h *ReservationHandler) SelectDay(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := h.Svc.SelectDay(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

// ToggleSlot flips one slot label in the chosen set.
func (h *ReservationHandler) ToggleSlot(c *gin.Context) {
	var input struct {
		Label string `json:"label" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := h.Svc.ToggleSlot(c.Request.Context(), c.Param("sessionID"), input.Label)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

// CommitSelection moves the chosen slots into the cart as one batch.
func (h *ReservationHandler) CommitSelection(c *gin.Context) {
	sess, committed, err := h.Svc.CommitSelection(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	h.App.ShowToast(fmt.Sprintf("成功預約 %d 個時段", committed))
	view := sessionView(sess)
	view["committed"] = committed
	c.JSON(http.StatusOK, view)
}

// RemoveItem drops one cart line by id; absent ids are fine.
func (h *ReservationHandler) RemoveItem(c *gin.Context) {
	sess, err := h.Svc.RemoveItem(c.Request.Context(), c.Param("sessionID"), c.Param("itemID"))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	h.App.ShowToast("已移除預約")
	c.JSON(http.StatusOK, sessionView(sess))
}

// Checkout reports the total and clears the cart; payment happens elsewhere.
func (h *ReservationHandler) Checkout(c *gin.Context) {
	sess, total, err := h.Svc.Checkout(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	view := sessionView(sess)
	view["checkoutTotal"] = total
	c.JSON(http.StatusOK, view)
}
