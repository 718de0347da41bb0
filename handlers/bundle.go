// File: luxdrive/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	ListVehiclesHandler  gin.HandlerFunc
	ListLocationsHandler gin.HandlerFunc

	// Booking wizard endpoints
	OpenWizard      gin.HandlerFunc
	GetWizard       gin.HandlerFunc
	UpdateItinerary gin.HandlerFunc
	UpdateDriver    gin.HandlerFunc
	NextStep        gin.HandlerFunc
	PreviousStep    gin.HandlerFunc
	CloseWizard     gin.HandlerFunc

	// Assistant endpoints
	ChatHandler       gin.HandlerFunc
	TranscriptHandler gin.HandlerFunc
	ResetHandler      gin.HandlerFunc
}
