package orderRepo

import (
	"fmt"
	"time"

	"alcahub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Insert stores a new order document.
func (r *MongoOrderRepo) Insert(order *models.Order) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		if IsDuplicateSlot(err) {
			return fmt.Errorf("slot already booked for professional %s on %s %s: %w",
				order.Professional.ID, order.Date, order.Time, err)
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// GetByID retrieves an order by its ID.
func (r *MongoOrderRepo) GetByID(id string) (*models.Order, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch order with id %s: %w", id, err)
	}
	return &order, nil
}

// UpdateStatus sets the status of an order.
func (r *MongoOrderRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status for order %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order with id %s not found", id)
	}
	return nil
}

// UpdatePayment sets the payment status (and method) of an order.
func (r *MongoOrderRepo) UpdatePayment(id, paymentStatus, paymentMethod string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"paymentStatus": paymentStatus}
	if paymentMethod != "" {
		set["paymentMethod"] = paymentMethod
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update payment for order %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order with id %s not found", id)
	}
	return nil
}

// PatchReview attaches a rating/review to an order.
func (r *MongoOrderRepo) PatchReview(id string, rating float64, review string, reviewedAt time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating":     rating,
		"review":     review,
		"reviewDate": reviewedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to patch review for order %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order with id %s not found", id)
	}
	return nil
}
