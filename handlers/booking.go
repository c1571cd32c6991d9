package handlers

import (
	"net/http"

	"alcahub/services/booking"
	"alcahub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(service booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// bookingErrStatus maps service errors to HTTP statuses.
func bookingErrStatus(err error) int {
	switch {
	case booking.IsNotFound(err):
		return http.StatusNotFound
	case booking.IsConflict(err):
		return http.StatusConflict
	case booking.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// InitiateSession starts a new wizard session.
// Body: { "professionalId": "...", "flow": "standard|mobile|agenda" }
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		ProfessionalID string `json:"professionalId" binding:"required"`
		Flow           string `json:"flow"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.StartSession(c.Request.Context(), c.GetString("userID"), input.Flow, input.ProfessionalID)
	if err != nil {
		utils.JSONError(c, bookingErrStatus(err), "failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession returns the current wizard state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, bookingErrStatus(err), "failed to fetch booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession merges a partial selection into the draft.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var sel booking.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.ApplySelection(c.Request.Context(), c.Param("sessionID"), sel)
	if err != nil {
		utils.JSONError(c, bookingErrStatus(err), "failed to update booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// NextStep advances the wizard one step. Responds with moved=false (and the
// unchanged session) when the current step's required fields are incomplete.
func (h *BookingHandler) NextStep(c *gin.Context) {
	session, moved, err := h.Service.Next(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, bookingErrStatus(err), "failed to advance booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "moved": moved})
}

// PrevStep moves the wizard back one step; a no-op on the first step.
func (h *BookingHandler) PrevStep(c *gin.Context) {
	session, moved, err := h.Service.Prev(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, bookingErrStatus(err), "failed to step back booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "moved": moved})
}

// CompleteBooking turns the draft into an order.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	order, err := h.Service.Complete(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, bookingErrStatus(err), "failed to complete booking", err.Error())
		return
	}
	h.Logger.Info("booking completed", zap.String("orderID", order.ID))
	c.JSON(http.StatusCreated, order)
}

// CancelSession discards the wizard session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, bookingErrStatus(err), "failed to cancel booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
