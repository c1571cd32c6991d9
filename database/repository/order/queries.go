package orderRepo

import (
	"fmt"
	"time"

	"alcahub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByUser retrieves all orders belonging to a user, newest first.
func (r *MongoOrderRepo) GetByUser(userID string) ([]models.Order, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// ReservedTimes returns the start times already booked for a professional on a
// date, excluding cancelled orders. This is the reservation set the
// availability generator checks candidate slots against.
func (r *MongoOrderRepo) ReservedTimes(professionalID, date string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"professional.id": professionalID,
		"date":            date,
		"status":          bson.M{"$ne": models.OrderCancelled},
	}
	opts := options.Find().SetProjection(bson.M{"time": 1, "_id": 0})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reserved times for professional %s on %s: %w", professionalID, date, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Time string `bson:"time"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode reserved times: %w", err)
	}

	times := make([]string, 0, len(results))
	for _, res := range results {
		times = append(times, res.Time)
	}
	return times, nil
}

// PendingOlderThan lists pending orders created before the cutoff.
func (r *MongoOrderRepo) PendingOlderThan(cutoff time.Time) ([]models.Order, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":    models.OrderPending,
		"createdAt": bson.M{"$lt": cutoff},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stale pending orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode stale pending orders: %w", err)
	}
	return orders, nil
}
