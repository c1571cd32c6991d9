package models

import "time"

// BookingDraft accumulates the in-progress, unpersisted selection state of a
// booking wizard. It lives in the session cache and is discarded on
// expiry/cancel unless completed into an Order.
type BookingDraft struct {
	ProfessionalID string  `json:"professionalId"`
	ServiceName    string  `json:"serviceName,omitempty"` // ad-hoc service label (specialty)
	PackageID      string  `json:"packageId,omitempty"`   // mutually exclusive with a custom duration
	Date           string  `json:"date,omitempty"`        // "2006-01-02"
	Time           string  `json:"time,omitempty"`        // "HH:MM"
	DurationHours  float64 `json:"durationHours,omitempty"`
	Address        string  `json:"address,omitempty"`
	Contact        string  `json:"contact,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	PaymentMethod  string  `json:"paymentMethod,omitempty"`
	Total          float64 `json:"total,omitempty"`
	Status         string  `json:"status"` // always "pending" while drafting
}

// BookingSession holds a wizard's cumulative state between HTTP calls.
type BookingSession struct {
	SessionID string       `json:"sessionId"`
	UserID    string       `json:"userId"`
	Flow      string       `json:"flow"` // "standard", "mobile" or "agenda"
	Step      int          `json:"step"` // 1-based
	Draft     BookingDraft `json:"draft"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
