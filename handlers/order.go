package handlers

import (
	"net/http"

	professionalRepo "alcahub/database/repository/professional"
	"alcahub/models"
	"alcahub/services/order"
	"alcahub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler serves the order list/review surface.
type OrderHandler struct {
	Service          order.OrderService
	ProfessionalRepo professionalRepo.ProfessionalRepository
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(service order.OrderService, profRepo professionalRepo.ProfessionalRepository) *OrderHandler {
	return &OrderHandler{Service: service, ProfessionalRepo: profRepo}
}

// orderErrStatus maps service errors to HTTP statuses.
func orderErrStatus(err error) int {
	switch {
	case order.IsNotFound(err):
		return http.StatusNotFound
	case order.IsConflict(err):
		return http.StatusConflict
	case order.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ListOrdersHandler returns the user's orders merged with fixtures.
func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	orders, err := h.Service.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, orderErrStatus(err), "failed to list orders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// CreateOrderHandler appends an order directly, outside the wizard. The
// professional snapshot is resolved server-side from the referenced id.
func (h *OrderHandler) CreateOrderHandler(c *gin.Context) {
	var input struct {
		ProfessionalID string  `json:"professionalId" binding:"required"`
		ServiceName    string  `json:"serviceName" binding:"required"`
		PackageID      string  `json:"packageId"`
		Date           string  `json:"date" binding:"required"`
		Time           string  `json:"time" binding:"required"`
		DurationHours  float64 `json:"durationHours" binding:"required"`
		Price          float64 `json:"price"`
		PaymentMethod  string  `json:"paymentMethod"`
		Address        string  `json:"address" binding:"required"`
		Notes          string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	prof, err := h.ProfessionalRepo.GetByID(input.ProfessionalID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch professional", err.Error())
		return
	}
	if prof == nil {
		utils.JSONError(c, http.StatusNotFound, "professional not found", "")
		return
	}

	price := input.Price
	if price == 0 {
		if pkg, ok := prof.PackageByID(input.PackageID); ok {
			price = pkg.Price
		} else {
			price = utils.RoundMoney(prof.Hourly.Avg * input.DurationHours)
		}
	}

	o := &models.Order{
		UserID: c.GetString("userID"),
		Professional: models.ProfessionalSnapshot{
			ID:        prof.ID,
			Name:      prof.Name,
			AvatarURL: prof.AvatarURL,
			Rating:    prof.Rating,
		},
		Service: models.ServiceSnapshot{
			Name:          input.ServiceName,
			PackageID:     input.PackageID,
			DurationHours: input.DurationHours,
		},
		Date:          input.Date,
		Time:          input.Time,
		DurationHours: input.DurationHours,
		Price:         price,
		PaymentMethod: input.PaymentMethod,
		Address:       input.Address,
		Notes:         input.Notes,
	}

	persisted, err := h.Service.Append(c.Request.Context(), o)
	if err != nil {
		utils.JSONError(c, orderErrStatus(err), "failed to create order", err.Error())
		return
	}
	c.JSON(http.StatusCreated, persisted)
}

// UpdateOrderStatusHandler applies a status transition.
// Body: { "status": "confirmado" }
func (h *OrderHandler) UpdateOrderStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	o, err := h.Service.UpdateStatus(c.Request.Context(), c.GetString("userID"), c.Param("id"), input.Status)
	if err != nil {
		utils.JSONError(c, orderErrStatus(err), "failed to update order status", err.Error())
		return
	}
	c.JSON(http.StatusOK, o)
}

// SubmitReviewHandler patches a rating/review onto a completed order and
// folds the rating into the professional's aggregate.
// Body: { "rating": 5, "review": "..." }
func (h *OrderHandler) SubmitReviewHandler(c *gin.Context) {
	var input struct {
		Rating float64 `json:"rating" binding:"required"`
		Review string  `json:"review"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	o, err := h.Service.SubmitReview(c.Request.Context(), c.GetString("userID"), c.Param("id"), input.Rating, input.Review)
	if err != nil {
		utils.JSONError(c, orderErrStatus(err), "failed to submit review", err.Error())
		return
	}

	if err := h.ProfessionalRepo.UpdateRating(o.Professional.ID, input.Rating); err != nil {
		utils.GetLogger().Warn("failed to update professional rating aggregate",
			zap.String("professionalID", o.Professional.ID), zap.Error(err))
	}
	c.JSON(http.StatusOK, o)
}

// OrderStatusStylesHandler exposes the status label/color lookup table.
func (h *OrderHandler) OrderStatusStylesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusStyles)
}
