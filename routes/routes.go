package routes

import (
	"net/http"
	"time"

	"fitapp/handlers"
	"fitapp/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterReservationRoutes sets up the venue reservation flow endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservation")
	{
		api.POST("/session", hb.Reservation.StartSession)
		api.GET("/session/:sessionID", hb.Reservation.GetSession)
		api.PUT("/session/:sessionID/sport", hb.Reservation.SelectSport)
		api.PUT("/session/:sessionID/date", hb.Reservation.SelectDay)
		api.PUT("/session/:sessionID/slots", hb.Reservation.ToggleSlot)
		api.POST("/session/:sessionID/commit", hb.Reservation.CommitSelection)
		api.DELETE("/session/:sessionID/cart/:itemID", hb.Reservation.RemoveItem)
		api.POST("/session/:sessionID/checkout", hb.Reservation.Checkout)
		api.GET("/slots", hb.Reservation.ListSlots)
		api.GET("/calendar", hb.Reservation.GetCalendar)
		api.GET("/sports", hb.Venue.ListSports)
	}
}

// RegisterChatRoutes registers captain chat endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", hb.Chat.Ask)
		api.GET("/:sessionID", hb.Chat.History)
	}
}

// RegisterActivityRoutes registers pickup activity endpoints.
func RegisterActivityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/activities")
	{
		api.GET("", hb.Activity.List)
		api.GET("/:id", hb.Activity.Get)
		api.POST("/:id/join", hb.Activity.Join)
	}
	r.GET("/api/my/activities", hb.Activity.My)
	r.POST("/api/leave", hb.Activity.SubmitLeave)
}

// RegisterVenueRoutes registers rental venue endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/venues")
	{
		api.GET("", hb.Venue.List)
		api.GET("/:id", hb.Venue.Get)
		api.POST("/select", hb.Venue.Select)
	}
}

// RegisterCourseRoutes registers team course endpoints.
func RegisterCourseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/teams")
	{
		api.GET("", hb.Course.ListTeams)
		api.GET("/:id", hb.Course.GetTeam)
		api.GET("/:id/locations", hb.Course.ListLocations)
		api.GET("/:id/locations/:locId/classes", hb.Course.ListClasses)
	}
	r.GET("/api/classes/:classId", hb.Course.GetClass)
}

// RegisterStoreRoutes registers store and wallet endpoints.
func RegisterStoreRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/store")
	{
		api.GET("/products", hb.Store.ListProducts)
		api.POST("/cart", hb.Store.StartCart)
		api.GET("/cart/:sessionID", hb.Store.GetCart)
		api.POST("/cart/:sessionID/items", hb.Store.AddItem)
		api.DELETE("/cart/:sessionID/items/:productID", hb.Store.RemoveItem)
	}
	wallet := r.Group("/api/wallet")
	{
		wallet.GET("/:sessionID", hb.Store.GetWallet)
		wallet.POST("/:sessionID/topup", hb.Store.TopUp)
	}
}

// RegisterNotificationRoutes registers notification feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.GET("", hb.Notification.List)
		api.PUT("/:id/read", hb.Notification.MarkRead)
	}
}

// RegisterDistrictRoutes registers district selection endpoints.
func RegisterDistrictRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/districts")
	{
		api.GET("", hb.District.List)
		api.POST("/select", hb.District.Select)
		api.POST("/locate", hb.District.Locate)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm FitApp", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterReservationRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterActivityRoutes(r, hb)
	RegisterVenueRoutes(r, hb)
	RegisterCourseRoutes(r, hb)
	RegisterStoreRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterDistrictRoutes(r, hb)
	RegisterHealthRoute(r)
}
