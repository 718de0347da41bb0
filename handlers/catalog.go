package handlers

import (
	"net/http"

	"luxdrive/models"
	"luxdrive/services/catalog"
	"luxdrive/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the immutable fleet and location lists.
type CatalogHandler struct {
	Store *catalog.Store
}

func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	return &CatalogHandler{Store: store}
}

// ListVehiclesHandler returns the fleet, optionally filtered to one category.
// An absent or "All" selector returns every vehicle in catalog order.
func (h *CatalogHandler) ListVehiclesHandler(c *gin.Context) {
	selector := c.Query("category")
	if selector != "" && selector != models.CategorySelectorAll {
		if _, err := models.ParseCategory(selector); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid category", err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": h.Store.FilterByCategory(selector)})
}

// ListLocationsHandler returns the fixed pickup/drop-off locations.
func (h *CatalogHandler) ListLocationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": h.Store.Locations()})
}
