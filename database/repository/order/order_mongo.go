package orderRepo

import (
	"context"
	"fmt"
	"time"

	"alcahub/database"
	"alcahub/models"
	"alcahub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoOrderRepo implements OrderRepository using MongoDB.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo creates a new instance of OrderRepository using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	coll := database.MongoClient.Database("alcahub").Collection("orders")
	repo := &MongoOrderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("failed to create order indexes", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// slotHoldingStatuses are the statuses under which an order keeps its slot
// reserved. Partial indexes do not support $ne, so excluding cancelado is
// expressed as $in over this list.
func slotHoldingStatuses() []string {
	return []string{
		models.OrderPending,
		models.OrderConfirmed,
		models.OrderInProgress,
		models.OrderCompleted,
	}
}

// orderIndexModels describes the collection's indexes. The partial unique
// index on (professional.id, date, time) is what makes double-booking a write
// error instead of a race.
func orderIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{
			Keys: bson.D{{Key: "professional.id", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": bson.M{"$in": slotHoldingStatuses()}}),
		},
	}
}

func (r *MongoOrderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, orderIndexModels())
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// IsDuplicateSlot reports whether the error is the unique-index violation for
// an already booked (professional, date, time) triple.
func IsDuplicateSlot(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
