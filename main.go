// File: fitapp/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitapp/appstate"
	"fitapp/catalog"
	"fitapp/config"
	"fitapp/cron"
	"fitapp/handlers"
	"fitapp/middleware"
	"fitapp/routes"
	activitySvc "fitapp/services/activity"
	ai "fitapp/services/intelligence"
	"fitapp/services/reservation"
	"fitapp/services/session"
	storeSvc "fitapp/services/store"
	"fitapp/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	sessionClient := utils.GetSessionCacheClient()
	chatClient := utils.GetChatCacheClient()
	utils.StartHealthMonitor([]*redis.Client{sessionClient, chatClient})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// App-wide state (district, selected venue, toast), mutated only via setters.
	app := appstate.New(config.AppConfig.DefaultDistrict)

	// repositories.
	activityRepo := catalog.NewMemoryActivityRepo()
	venueRepo := catalog.NewMemoryVenueRepo()
	courseRepo := catalog.NewMemoryCourseRepo()
	productRepo := catalog.NewMemoryProductRepo()
	districtRepo := catalog.NewMemoryDistrictRepo()
	notifRepo := catalog.NewMemoryNotificationRepo()

	// Reminder pipeline.
	cron.InitReminderWorker(notifRepo)
	scheduler := cron.NewAsynqReminderScheduler()
	defer scheduler.Close()

	// services.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	reservationService := &reservation.DefaultReservationService{
		Catalog:   reservation.NewStaticSlotCatalog(),
		Venues:    venueRepo,
		Sessions:  session.NewRedisStore(sessionClient, "resv:sess:", sessionTTL),
		Scheduler: scheduler,
		UnitPrice: config.AppConfig.SlotUnitPrice,
		Logger:    logger,
	}

	var generator ai.Generator
	if config.AppConfig.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; captain chat will answer with the fallback message")
		generator = ai.UnavailableGenerator{}
	} else {
		var err error
		generator, err = ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
	}
	chatService := &ai.DefaultChatService{
		Gen:        generator,
		Activities: activityRepo,
		Contexts:   ai.NewRedisContextStore(chatClient, 30*time.Minute),
		Timeout:    time.Duration(config.AppConfig.ChatTimeoutSeconds) * time.Second,
		Logger:     logger,
	}

	activityService := activitySvc.NewDefaultActivityService(activityRepo)
	storeService := &storeSvc.DefaultStoreService{
		Products: productRepo,
		Sessions: session.NewRedisStore(sessionClient, "store:sess:", sessionTTL),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Reservation:  handlers.NewReservationHandler(reservationService, reservationService.Catalog, app, logger),
		Chat:         handlers.NewChatHandler(chatService),
		Activity:     handlers.NewActivityHandler(activityService),
		Venue:        handlers.NewVenueHandler(venueRepo, app),
		Course:       handlers.NewCourseHandler(courseRepo),
		Store:        handlers.NewStoreHandler(storeService, productRepo, app),
		Notification: handlers.NewNotificationHandler(notifRepo),
		District:     handlers.NewDistrictHandler(districtRepo, app),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
