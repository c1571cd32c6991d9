package booking

import (
	"context"

	"alcahub/models"
)

// Selection is a partial update to a draft; nil fields are left untouched.
// Package and custom duration are mutually exclusive: whichever arrives last
// wins and the other is cleared.
type Selection struct {
	ServiceName   *string  `json:"serviceName,omitempty"`
	PackageID     *string  `json:"packageId,omitempty"`
	Date          *string  `json:"date,omitempty"`
	Time          *string  `json:"time,omitempty"`
	DurationHours *float64 `json:"durationHours,omitempty"`
	Address       *string  `json:"address,omitempty"`
	Contact       *string  `json:"contact,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
	// ViewMonth ("2006-01") mirrors calendar navigation; switching months
	// clears the in-progress date/time selection.
	ViewMonth *string `json:"viewMonth,omitempty"`
}

// BookingSessionService drives the booking wizard.
type BookingSessionService interface {
	// StartSession opens a wizard session for a professional.
	StartSession(ctx context.Context, userID, flow, professionalID string) (*models.BookingSession, error)
	// GetSession returns the current session state.
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	// ApplySelection merges a partial selection into the draft.
	ApplySelection(ctx context.Context, sessionID string, sel Selection) (*models.BookingSession, error)
	// Next advances one step when the current step is complete; moved reports
	// whether the step changed.
	Next(ctx context.Context, sessionID string) (session *models.BookingSession, moved bool, err error)
	// Prev steps back; a no-op on the first step.
	Prev(ctx context.Context, sessionID string) (session *models.BookingSession, moved bool, err error)
	// Complete turns the draft into a persisted order and discards the session.
	Complete(ctx context.Context, sessionID string) (*models.Order, error)
	// CancelSession discards the session without persisting anything.
	CancelSession(ctx context.Context, sessionID string) error
}
