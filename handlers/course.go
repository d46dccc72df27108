package handlers

import (
	"net/http"

	"fitapp/catalog"

	"github.com/gin-gonic/gin"
)

// CourseHandler exposes team courses, locations and classes.
type CourseHandler struct {
	Repo catalog.CourseRepository
}

func NewCourseHandler(repo catalog.CourseRepository) *CourseHandler {
	return &CourseHandler{Repo: repo}
}

// ListTeams returns teams, optionally filtered by district.
func (h *CourseHandler) ListTeams(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"teams": h.Repo.ListTeams(c.Query("district"))})
}

// GetTeam returns one team or a not-found message.
func (h *CourseHandler) GetTeam(c *gin.Context) {
	t, err := h.Repo.GetTeamByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到課程團隊"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// ListLocations returns the venues a team runs classes at.
func (h *CourseHandler) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": h.Repo.ListLocations(c.Param("id"))})
}

// ListClasses returns a team's classes at one location.
func (h *CourseHandler) ListClasses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"classes": h.Repo.ListClasses(c.Param("id"), c.Param("locId"))})
}

// GetClass returns one class or a not-found message.
func (h *CourseHandler) GetClass(c *gin.Context) {
	cl, err := h.Repo.GetClassByID(c.Param("classId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到課程"})
		return
	}
	c.JSON(http.StatusOK, cl)
}
