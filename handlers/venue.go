package handlers

import (
	"net/http"
	"strconv"

	"fitapp/appstate"
	"fitapp/catalog"
	"fitapp/models"

	"github.com/gin-gonic/gin"
)

// VenueHandler exposes the rental venue directory.
type VenueHandler struct {
	Repo catalog.VenueRepository
	App  *appstate.AppState
}

func NewVenueHandler(repo catalog.VenueRepository, app *appstate.AppState) *VenueHandler {
	return &VenueHandler{Repo: repo, App: app}
}

// List returns venues filtered by district and sport.
func (h *VenueHandler) List(c *gin.Context) {
	district := c.Query("district")
	sport := models.SportType(c.Query("sport"))
	c.JSON(http.StatusOK, gin.H{"venues": h.Repo.FilterVenues(district, sport)})
}

// Get returns one venue or a not-found message.
func (h *VenueHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return
	}
	v, err := h.Repo.GetVenueByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到場地"})
		return
	}
	c.JSON(http.StatusOK, v)
}

// Select records the venue the visitor is browsing activities for.
func (h *VenueHandler) Select(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.App.SetSelectedVenue(input.Name)
	c.JSON(http.StatusOK, gin.H{"selectedVenue": input.Name})
}

// ListSports returns the sport cards for the reservation screen.
func (h *VenueHandler) ListSports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sports": h.Repo.ListSports()})
}
