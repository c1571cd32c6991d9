package payment

import (
	"context"
	"fmt"
	"time"

	"alcahub/config"
	"alcahub/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService creates payment intents for orders.
type PaymentService interface {
	CreateIntent(ctx context.Context, req models.PaymentRequest) (*models.PaymentIntent, error)
}

// StripePaymentService charges cards through Stripe payment intents. When no
// Stripe key is configured it falls back to locally simulated intents so the
// booking flow stays usable in development.
type StripePaymentService struct {
	Logger *zap.Logger
}

// NewStripePaymentService creates the payment service.
func NewStripePaymentService(logger *zap.Logger) *StripePaymentService {
	return &StripePaymentService{Logger: logger}
}

// CreateIntent creates a payment intent for the amount on the request.
func (s *StripePaymentService) CreateIntent(ctx context.Context, req models.PaymentRequest) (*models.PaymentIntent, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	currency := req.Currency
	if currency == "" {
		currency = "brl"
	}

	if config.AppConfig.StripeKey == "" || req.Method != "card" {
		return s.mockIntent(req, currency), nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(req.Amount * 100)),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Metadata: map[string]string{
			"orderId": req.OrderID,
			"userId":  req.UserID,
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe intent creation failed: %w", err)
	}

	s.Logger.Info("payment intent created",
		zap.String("orderID", req.OrderID),
		zap.String("intentID", pi.ID))
	return &models.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       req.Amount,
		Currency:     currency,
		CreatedAt:    time.Now(),
	}, nil
}

// mockIntent stands in for the gateway for pix/cash and keyless dev setups.
func (s *StripePaymentService) mockIntent(req models.PaymentRequest, currency string) *models.PaymentIntent {
	intent := &models.PaymentIntent{
		ID:        "pi_mock_" + uuid.New().String(),
		Status:    "requires_confirmation",
		Amount:    req.Amount,
		Currency:  currency,
		CreatedAt: time.Now(),
	}
	s.Logger.Info("mock payment intent created",
		zap.String("orderID", req.OrderID),
		zap.String("intentID", intent.ID),
		zap.String("method", req.Method))
	return intent
}
