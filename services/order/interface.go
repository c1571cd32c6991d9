package order

import (
	"context"
	"time"

	"alcahub/models"
)

// OrderService is the sole mutator of the order store. Every write funnels
// through it so concurrent writers cannot clobber each other the way multiple
// browser tabs over one storage key could.
type OrderService interface {
	// List returns a user's orders merged with the demo fixtures,
	// de-duplicated by id, newest first.
	List(ctx context.Context, userID string) ([]models.Order, error)
	// Get returns a single order visible to the user.
	Get(ctx context.Context, userID, id string) (*models.Order, error)
	// Append persists a new order: fresh "ORD-<millis>" id, status defaults
	// to pendente, previously stored orders untouched.
	Append(ctx context.Context, o *models.Order) (*models.Order, error)
	// UpdateStatus applies a validated status transition.
	UpdateStatus(ctx context.Context, userID, id, next string) (*models.Order, error)
	// SubmitReview patches rating/review onto a completed order.
	SubmitReview(ctx context.Context, userID, id string, rating float64, review string) (*models.Order, error)
	// MarkPaid records a successful payment on the user's own order; only
	// orders still awaiting confirmation accept payment.
	MarkPaid(ctx context.Context, userID, id, method string) error
	// ReservedTimes exposes the reservation set for one professional-day.
	ReservedTimes(professionalID, date string) ([]string, error)
	// ExpireStalePending cancels pending orders older than maxAge and
	// returns how many were cancelled.
	ExpireStalePending(ctx context.Context, maxAge time.Duration) (int, error)
}
