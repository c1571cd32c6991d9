package handlers

import (
	"net/http"

	"alcahub/models"
	orderService "alcahub/services/order"
	"alcahub/services/payment"
	"alcahub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler runs charges for orders.
type PaymentHandler struct {
	Payments payment.PaymentService
	Orders   orderService.OrderService
	Logger   *zap.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(payments payment.PaymentService, orders orderService.OrderService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Payments: payments, Orders: orders, Logger: logger}
}

// CreateIntentHandler creates a payment intent for an order. The amount is
// read from the order itself, never from the client.
// Body: { "orderId": "...", "method": "card|pix|cash" }
func (h *PaymentHandler) CreateIntentHandler(c *gin.Context) {
	var input struct {
		OrderID string `json:"orderId" binding:"required"`
		Method  string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	userID := c.GetString("userID")
	o, err := h.Orders.Get(c.Request.Context(), userID, input.OrderID)
	if err != nil {
		utils.JSONError(c, orderErrStatus(err), "failed to fetch order", err.Error())
		return
	}

	intent, err := h.Payments.CreateIntent(c.Request.Context(), models.PaymentRequest{
		OrderID: o.ID,
		UserID:  userID,
		Amount:  o.Price,
		Method:  input.Method,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to create payment intent", err.Error())
		return
	}
	c.JSON(http.StatusOK, intent)
}

// ConfirmPaymentHandler records a successful payment and confirms the order.
// Body: { "orderId": "...", "method": "card|pix|cash" }
func (h *PaymentHandler) ConfirmPaymentHandler(c *gin.Context) {
	var input struct {
		OrderID string `json:"orderId" binding:"required"`
		Method  string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	userID := c.GetString("userID")
	if err := h.Orders.MarkPaid(c.Request.Context(), userID, input.OrderID, input.Method); err != nil {
		utils.JSONError(c, orderErrStatus(err), "failed to record payment", err.Error())
		return
	}

	o, err := h.Orders.UpdateStatus(c.Request.Context(), userID, input.OrderID, models.OrderConfirmed)
	if err != nil {
		utils.JSONError(c, orderErrStatus(err), "failed to confirm order", err.Error())
		return
	}
	h.Logger.Info("payment confirmed", zap.String("orderID", o.ID))
	c.JSON(http.StatusOK, o)
}
