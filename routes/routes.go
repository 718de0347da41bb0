package routes

import (
	"net/http"
	"time"

	"luxdrive/handlers"
	"luxdrive/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the fleet and location endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/vehicles", hb.ListVehiclesHandler)
		api.GET("/locations", hb.ListLocationsHandler)
	}
}

// RegisterWizardRoutes sets up the endpoints for the booking wizard.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	wizardGroup := r.Group("/api/wizard")
	{
		wizardGroup.POST("", hb.OpenWizard)
		wizardGroup.GET("/:sessionID", hb.GetWizard)
		wizardGroup.PATCH("/:sessionID/itinerary", hb.UpdateItinerary)
		wizardGroup.PATCH("/:sessionID/driver", hb.UpdateDriver)
		wizardGroup.POST("/:sessionID/next", hb.NextStep)
		wizardGroup.POST("/:sessionID/back", hb.PreviousStep)
		wizardGroup.DELETE("/:sessionID", hb.CloseWizard)
	}
}

// RegisterAssistantRoutes registers the concierge chat endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.POST("/chat", hb.ChatHandler)
		api.GET("/chat/:conversationID", hb.TranscriptHandler)
		api.DELETE("/chat/:conversationID", hb.ResetHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterHealthRoute(r)
}
