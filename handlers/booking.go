package handlers

import (
	"errors"
	"net/http"

	"luxdrive/models"
	"luxdrive/services/booking"
	"luxdrive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the booking wizard operations.
type WizardHandler struct {
	Svc    booking.WizardService
	Logger *zap.Logger
}

func NewWizardHandler(svc booking.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Svc: svc, Logger: logger}
}

// OpenWizard starts a new wizard session for one vehicle.
func (h *WizardHandler) OpenWizard(c *gin.Context) {
	var input struct {
		VehicleID string `json:"vehicleId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	snap, err := h.Svc.Open(c.Request.Context(), input.VehicleID)
	if err != nil {
		if errors.Is(err, booking.ErrVehicleNotFound) {
			utils.JSONError(c, http.StatusNotFound, "vehicle not found", input.VehicleID)
			return
		}
		h.Logger.Error("Failed to open wizard session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to open booking session", err.Error())
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// GetWizard returns the current snapshot of a wizard session.
func (h *WizardHandler) GetWizard(c *gin.Context) {
	snap, err := h.Svc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// UpdateItinerary applies a partial booking draft update.
func (h *WizardHandler) UpdateItinerary(c *gin.Context) {
	var upd models.DraftUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	snap, err := h.Svc.UpdateItinerary(c.Request.Context(), c.Param("sessionID"), upd)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// UpdateDriver applies a partial driver details update.
func (h *WizardHandler) UpdateDriver(c *gin.Context) {
	var upd models.DriverUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	snap, err := h.Svc.UpdateDriver(c.Request.Context(), c.Param("sessionID"), upd)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// NextStep advances the wizard. The request body may carry card-like fields
// from the review form; they are accepted and deliberately discarded, no
// payment is captured.
func (h *WizardHandler) NextStep(c *gin.Context) {
	snap, err := h.Svc.Next(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// PreviousStep moves the wizard one step back.
func (h *WizardHandler) PreviousStep(c *gin.Context) {
	snap, err := h.Svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// CloseWizard discards the session and all data it holds.
func (h *WizardHandler) CloseWizard(c *gin.Context) {
	if err := h.Svc.Close(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", c.Param("sessionID"))
		return
	}
	h.Logger.Error("Wizard operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "booking session operation failed", err.Error())
}
