// File: luxdrive/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"luxdrive/config"
	"luxdrive/handlers"
	"luxdrive/middleware"
	"luxdrive/routes"
	"luxdrive/services/assistant"
	"luxdrive/services/booking"
	"luxdrive/services/catalog"
	"luxdrive/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.InitChatCache()
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetSessionCacheClient(),
		utils.GetChatCacheClient(),
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// The catalog is static and immutable for the process lifetime.
	catalogStore := catalog.NewStore()

	// services.
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient(), booking.SessionTTL)
	wizardService := &booking.DefaultWizardService{
		Catalog: catalogStore,
		Store:   sessionStore,
	}

	transcripts := assistant.NewRedisTranscriptStore(utils.GetChatCacheClient(), assistant.TranscriptTTL)
	conciergeGateway := assistant.NewGateway(
		config.AppConfig.GeminiAPIKey,
		assistant.BuildSystemPrompt(catalogStore),
		assistant.NewGeminiChatClient,
		transcripts,
	)
	// Eager attempt; a missing key degrades silently and SendMessage retries.
	conciergeGateway.Initialize(context.Background())

	catalogHandler := handlers.NewCatalogHandler(catalogStore)
	wizardHandler := handlers.NewWizardHandler(wizardService, logger)
	assistantHandler := handlers.NewAssistantHandler(conciergeGateway)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		ListVehiclesHandler:  catalogHandler.ListVehiclesHandler,
		ListLocationsHandler: catalogHandler.ListLocationsHandler,

		// Booking wizard endpoints.
		OpenWizard:      wizardHandler.OpenWizard,
		GetWizard:       wizardHandler.GetWizard,
		UpdateItinerary: wizardHandler.UpdateItinerary,
		UpdateDriver:    wizardHandler.UpdateDriver,
		NextStep:        wizardHandler.NextStep,
		PreviousStep:    wizardHandler.PreviousStep,
		CloseWizard:     wizardHandler.CloseWizard,

		// Assistant endpoints.
		ChatHandler:       assistantHandler.ChatHandler,
		TranscriptHandler: assistantHandler.TranscriptHandler,
		ResetHandler:      assistantHandler.ResetHandler,
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
