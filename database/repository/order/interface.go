package orderRepo

import (
	"time"

	"alcahub/models"
)

// OrderRepository defines methods for order data access. The order service is
// the sole caller of the mutating methods.
type OrderRepository interface {
	// Insert stores a new order record.
	Insert(order *models.Order) error
	// GetByID retrieves an order by its ID.
	GetByID(id string) (*models.Order, error)
	// GetByUser retrieves all orders belonging to a user, newest first.
	GetByUser(userID string) ([]models.Order, error)
	// UpdateStatus sets the status of an order.
	UpdateStatus(id, status string) error
	// UpdatePayment sets the payment status (and method) of an order.
	UpdatePayment(id, paymentStatus, paymentMethod string) error
	// PatchReview attaches a rating/review to an order.
	PatchReview(id string, rating float64, review string, reviewedAt time.Time) error
	// ReservedTimes returns the start times ("HH:MM") already booked for a
	// professional on a date, excluding cancelled orders.
	ReservedTimes(professionalID, date string) ([]string, error)
	// PendingOlderThan lists pending orders created before the cutoff.
	PendingOlderThan(cutoff time.Time) ([]models.Order, error)
}
