package models

import "time"

// PaymentRequest describes a charge to run for an order.
type PaymentRequest struct {
	OrderID  string  `json:"orderId"`
	UserID   string  `json:"userId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"` // "card", "pix", "cash"
}

// PaymentIntent is the client-facing result of intent creation.
type PaymentIntent struct {
	ID           string    `json:"id"`
	ClientSecret string    `json:"clientSecret,omitempty"`
	Status       string    `json:"status"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"createdAt"`
}
