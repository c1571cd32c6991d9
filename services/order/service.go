package order

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	orderRepo "alcahub/database/repository/order"
	"alcahub/models"
	"alcahub/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const listCachePrefix = "orders:"

// DefaultOrderService implements OrderService over the Mongo repository with
// Redis as a write-through read cache.
type DefaultOrderService struct {
	Repo     orderRepo.OrderRepository
	Cache    *redis.Client
	Fixtures []models.Order
	CacheTTL time.Duration
	Now      func() time.Time
}

func (s *DefaultOrderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultOrderService) cacheTTL() time.Duration {
	if s.CacheTTL > 0 {
		return s.CacheTTL
	}
	return 5 * time.Minute
}

// List returns the user's orders merged with the fixtures, de-duplicated by
// id (stored orders win), newest first.
func (s *DefaultOrderService) List(ctx context.Context, userID string) ([]models.Order, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, listCachePrefix+userID).Result(); err == nil {
			var cached []models.Order
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return cached, nil
			}
		}
	}

	stored, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	seen := make(map[string]struct{}, len(stored))
	merged := make([]models.Order, 0, len(stored)+len(s.Fixtures))
	for _, o := range stored {
		seen[o.ID] = struct{}{}
		merged = append(merged, o)
	}
	for _, o := range s.Fixtures {
		if _, dup := seen[o.ID]; dup {
			continue
		}
		merged = append(merged, o)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	s.cacheList(ctx, userID, merged)
	return merged, nil
}

// Get returns a single order visible to the user (stored or fixture).
func (s *DefaultOrderService) Get(ctx context.Context, userID, id string) (*models.Order, error) {
	o, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o != nil {
		if o.UserID != userID {
			return nil, newNotFoundError("order not found")
		}
		return o, nil
	}
	if fix := s.fixtureByID(id); fix != nil {
		return fix, nil
	}
	return nil, newNotFoundError("order not found")
}

func (s *DefaultOrderService) fixtureByID(id string) *models.Order {
	for _, fix := range s.Fixtures {
		if fix.ID == id {
			cp := fix
			return &cp
		}
	}
	return nil
}

// mutableOrder fetches a stored order owned by the user for mutation. Fixture
// orders are read-only demo data; mutating one is a conflict, not a 500.
func (s *DefaultOrderService) mutableOrder(userID, id string) (*models.Order, error) {
	o, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		if s.fixtureByID(id) != nil {
			return nil, newConflictError("demo orders cannot be modified")
		}
		return nil, newNotFoundError("order not found")
	}
	if o.UserID != userID {
		return nil, newNotFoundError("order not found")
	}
	return o, nil
}

// Append persists a new order with a fresh id and pendente status.
func (s *DefaultOrderService) Append(ctx context.Context, o *models.Order) (*models.Order, error) {
	if o.UserID == "" {
		return nil, newValidationError("order is missing a user")
	}
	if o.Professional.ID == "" || o.Date == "" || o.Time == "" {
		return nil, newValidationError("order is missing professional, date or time")
	}

	now := s.now()
	o.ID = fmt.Sprintf("ORD-%d", now.UnixMilli())
	o.Status = models.OrderPending
	if o.PaymentStatus == "" {
		o.PaymentStatus = models.PaymentPending
	}
	o.CreatedAt = now

	if err := s.Repo.Insert(o); err != nil {
		if orderRepo.IsDuplicateSlot(err) {
			return nil, newConflictError("that time is no longer available")
		}
		return nil, err
	}

	s.invalidateList(ctx, o.UserID)
	utils.GetLogger().Info("order appended",
		zap.String("orderID", o.ID),
		zap.String("userID", o.UserID),
		zap.String("professionalID", o.Professional.ID))
	return o, nil
}

// UpdateStatus applies a validated status transition.
func (s *DefaultOrderService) UpdateStatus(ctx context.Context, userID, id, next string) (*models.Order, error) {
	if !IsValidStatus(next) {
		return nil, newValidationError("unknown order status: " + next)
	}

	o, err := s.mutableOrder(userID, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(o.Status, next) {
		return nil, newConflictError(fmt.Sprintf("cannot move order from %s to %s", o.Status, next))
	}

	if err := s.Repo.UpdateStatus(id, next); err != nil {
		return nil, err
	}
	o.Status = next
	s.invalidateList(ctx, o.UserID)
	return o, nil
}

// SubmitReview patches rating/review onto a completed order.
func (s *DefaultOrderService) SubmitReview(ctx context.Context, userID, id string, rating float64, review string) (*models.Order, error) {
	if rating < 1 || rating > 5 {
		return nil, newValidationError("rating must be between 1 and 5")
	}

	o, err := s.mutableOrder(userID, id)
	if err != nil {
		return nil, err
	}
	if o.Status != models.OrderCompleted {
		return nil, newConflictError("only completed orders can be reviewed")
	}

	reviewedAt := s.now()
	if err := s.Repo.PatchReview(id, rating, review, reviewedAt); err != nil {
		return nil, err
	}
	o.Rating = &rating
	o.Review = review
	o.ReviewDate = &reviewedAt
	s.invalidateList(ctx, o.UserID)
	return o, nil
}

// MarkPaid records a successful payment on the user's own order. Payment only
// lands on an order still awaiting confirmation, so a failed confirm call can
// never leave a paid flag behind on the wrong lifecycle stage.
func (s *DefaultOrderService) MarkPaid(ctx context.Context, userID, id, method string) error {
	o, err := s.mutableOrder(userID, id)
	if err != nil {
		return err
	}
	if !CanTransition(o.Status, models.OrderConfirmed) {
		return newConflictError(fmt.Sprintf("cannot record payment on a %s order", o.Status))
	}
	if err := s.Repo.UpdatePayment(id, models.PaymentPaid, method); err != nil {
		return err
	}
	s.invalidateList(ctx, o.UserID)
	return nil
}

// ReservedTimes exposes the reservation set for one professional-day.
func (s *DefaultOrderService) ReservedTimes(professionalID, date string) ([]string, error) {
	return s.Repo.ReservedTimes(professionalID, date)
}

// ExpireStalePending cancels pending orders older than maxAge.
func (s *DefaultOrderService) ExpireStalePending(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := s.now().Add(-maxAge)
	stale, err := s.Repo.PendingOlderThan(cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, o := range stale {
		if err := s.Repo.UpdateStatus(o.ID, models.OrderCancelled); err != nil {
			utils.GetLogger().Error("failed to expire stale order",
				zap.String("orderID", o.ID), zap.Error(err))
			continue
		}
		s.invalidateList(ctx, o.UserID)
		expired++
	}
	return expired, nil
}

func (s *DefaultOrderService) cacheList(ctx context.Context, userID string, orders []models.Order) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(orders)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, listCachePrefix+userID, data, s.cacheTTL()).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache order list", zap.String("userID", userID), zap.Error(err))
	}
}

func (s *DefaultOrderService) invalidateList(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, listCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate order list cache", zap.String("userID", userID), zap.Error(err))
	}
}
