package handlers

import (
	"net/http"

	"alcahub/models"
	"alcahub/services/user"
	"alcahub/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the signed-in user's account surface.
type ProfileHandler struct {
	Service user.UserService
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(service user.UserService) *ProfileHandler {
	return &ProfileHandler{Service: service}
}

// GetMeHandler returns the authenticated user's account.
func (h *ProfileHandler) GetMeHandler(c *gin.Context) {
	u, err := h.Service.GetByID(c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch account", err.Error())
		return
	}
	if u == nil {
		utils.JSONError(c, http.StatusNotFound, "account not found", "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfileHandler applies a partial profile edit.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	var update user.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Service.UpdateProfile(c.GetString("userID"), update)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateSettingsHandler replaces the user's preference settings.
func (h *ProfileHandler) UpdateSettingsHandler(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdateSettings(c.GetString("userID"), settings); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "settings updated"})
}

// AddPaymentMethodHandler stores a payment method on the profile. The first
// method added becomes the default.
func (h *ProfileHandler) AddPaymentMethodHandler(c *gin.Context) {
	var pm models.PaymentMethod
	if err := c.ShouldBindJSON(&pm); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if pm.Type != "card" && pm.Type != "pix" && pm.Type != "cash" {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment method type", "type must be card, pix or cash")
		return
	}

	saved, err := h.Service.AddPaymentMethod(c.GetString("userID"), pm)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to add payment method", err.Error())
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// DeletePaymentMethodHandler removes a stored payment method.
func (h *ProfileHandler) DeletePaymentMethodHandler(c *gin.Context) {
	if err := h.Service.RemovePaymentMethod(c.GetString("userID"), c.Param("pmID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to remove payment method", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment method removed"})
}

// DeleteAccountHandler removes the account permanently.
func (h *ProfileHandler) DeleteAccountHandler(c *gin.Context) {
	if err := h.Service.DeleteAccount(c.GetString("userID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete account", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
