package handlers

import (
	"net/http"

	"fitapp/appstate"
	"fitapp/catalog"
	"fitapp/config"
	"fitapp/models"

	"github.com/gin-gonic/gin"
)

// DistrictHandler exposes district selection and the locate stub.
type DistrictHandler struct {
	Repo catalog.DistrictRepository
	App  *appstate.AppState
}

func NewDistrictHandler(repo catalog.DistrictRepository, app *appstate.AppState) *DistrictHandler {
	return &DistrictHandler{Repo: repo, App: app}
}

// List returns the selectable districts plus the current one.
func (h *DistrictHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"districts": h.Repo.ListDistricts(),
		"current":   h.App.District(),
	})
}

// Select sets the current district.
func (h *DistrictHandler) Select(c *gin.Context) {
	var input struct {
		District string `json:"district" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.App.SetDistrict(input.District)
	c.JSON(http.StatusOK, gin.H{"district": input.District})
}

// Locate presets the district from coordinates. Coordinates are never
// resolved against a real geocoder; the success path always yields the
// configured preset label.
func (h *DistrictHandler) Locate(c *gin.Context) {
	var input models.GeoPoint
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無法取得您的位置"})
		return
	}
	district := config.AppConfig.DefaultDistrict
	h.App.SetDistrict(district)
	c.JSON(http.StatusOK, gin.H{"district": district})
}
