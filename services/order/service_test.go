package order

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"alcahub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderRepo is an in-memory OrderRepository for service tests.
type fakeOrderRepo struct {
	orders map[string]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*models.Order)}
}

func (r *fakeOrderRepo) Insert(o *models.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetByUser(userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with id %s not found", id)
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) UpdatePayment(id, paymentStatus, paymentMethod string) error {
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with id %s not found", id)
	}
	o.PaymentStatus = paymentStatus
	o.PaymentMethod = paymentMethod
	return nil
}

func (r *fakeOrderRepo) PatchReview(id string, rating float64, review string, reviewedAt time.Time) error {
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with id %s not found", id)
	}
	o.Rating = &rating
	o.Review = review
	o.ReviewDate = &reviewedAt
	return nil
}

func (r *fakeOrderRepo) ReservedTimes(professionalID, date string) ([]string, error) {
	var out []string
	for _, o := range r.orders {
		if o.Professional.ID == professionalID && o.Date == date && o.Status != models.OrderCancelled {
			out = append(out, o.Time)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) PendingOlderThan(cutoff time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.Status == models.OrderPending && o.CreatedAt.Before(cutoff) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func newTestService(repo *fakeOrderRepo, now time.Time) *DefaultOrderService {
	return &DefaultOrderService{
		Repo:     repo,
		Fixtures: Fixtures(),
		Now:      func() time.Time { return now },
	}
}

func validOrder(userID string) *models.Order {
	return &models.Order{
		UserID: userID,
		Professional: models.ProfessionalSnapshot{
			ID: "prof-1", Name: "Joana Lima", Rating: 4.8,
		},
		Service:       models.ServiceSnapshot{Name: "Limpeza", DurationHours: 2},
		Date:          "2024-03-04",
		Time:          "09:00",
		DurationHours: 2,
		Price:         200,
		Address:       "Bloco C, Ap 302",
	}
}

func TestAppendAssignsIDAndPendingStatus(t *testing.T) {
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeOrderRepo(), now)

	o, err := svc.Append(context.Background(), validOrder("user-1"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(o.ID, "ORD-"))
	assert.Equal(t, models.OrderPending, o.Status)
	assert.Equal(t, models.PaymentPending, o.PaymentStatus)
	assert.Equal(t, now, o.CreatedAt)
}

func TestAppendValidatesRequiredFields(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), time.Now())

	_, err := svc.Append(context.Background(), &models.Order{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	o := validOrder("")
	_, err = svc.Append(context.Background(), o)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestListMergesFixturesNewestFirst(t *testing.T) {
	repo := newFakeOrderRepo()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	created, err := svc.Append(context.Background(), validOrder("user-1"))
	require.NoError(t, err)

	orders, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)

	// One stored order plus two fixtures, stored one is newest.
	require.Len(t, orders, 3)
	assert.Equal(t, created.ID, orders[0].ID)

	ids := make(map[string]bool, len(orders))
	for _, o := range orders {
		ids[o.ID] = true
	}
	assert.True(t, ids["ORD-FIX-001"])
	assert.True(t, ids["ORD-FIX-002"])

	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i-1].CreatedAt.Before(orders[i].CreatedAt))
	}
}

func TestListStoredOrderWinsOverFixture(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, time.Now())

	// A stored order sharing a fixture id must not be duplicated, and the
	// stored copy wins.
	stored := validOrder("user-1")
	stored.ID = "ORD-FIX-001"
	stored.Status = models.OrderCancelled
	stored.CreatedAt = time.Now()
	require.NoError(t, repo.Insert(stored))

	orders, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	for _, o := range orders {
		if o.ID == "ORD-FIX-001" {
			assert.Equal(t, models.OrderCancelled, o.Status)
		}
	}
}

func TestUpdateStatusHonorsTransitionTable(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, time.Now())
	ctx := context.Background()

	o, err := svc.Append(ctx, validOrder("user-1"))
	require.NoError(t, err)

	// pendente -> confirmado -> em_andamento -> concluido is the happy path.
	for _, next := range []string{models.OrderConfirmed, models.OrderInProgress, models.OrderCompleted} {
		o, err = svc.UpdateStatus(ctx, "user-1", o.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, o.Status)
	}

	// Completed is terminal.
	_, err = svc.UpdateStatus(ctx, "user-1", o.ID, models.OrderCancelled)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), time.Now())

	_, err := svc.UpdateStatus(context.Background(), "user-1", "ORD-1", "finalizado")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestUpdateStatusSkipsLifecycleStages(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, time.Now())
	ctx := context.Background()

	o, err := svc.Append(ctx, validOrder("user-1"))
	require.NoError(t, err)

	// pendente cannot jump straight to concluido.
	_, err = svc.UpdateStatus(ctx, "user-1", o.ID, models.OrderCompleted)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestSubmitReviewOnlyOnCompletedOrders(t *testing.T) {
	repo := newFakeOrderRepo()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)
	ctx := context.Background()

	o, err := svc.Append(ctx, validOrder("user-1"))
	require.NoError(t, err)

	_, err = svc.SubmitReview(ctx, "user-1", o.ID, 5, "ótimo serviço")
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	for _, next := range []string{models.OrderConfirmed, models.OrderInProgress, models.OrderCompleted} {
		_, err = svc.UpdateStatus(ctx, "user-1", o.ID, next)
		require.NoError(t, err)
	}

	reviewed, err := svc.SubmitReview(ctx, "user-1", o.ID, 5, "ótimo serviço")
	require.NoError(t, err)
	require.NotNil(t, reviewed.Rating)
	assert.Equal(t, 5.0, *reviewed.Rating)
	assert.Equal(t, "ótimo serviço", reviewed.Review)
	require.NotNil(t, reviewed.ReviewDate)
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), time.Now())

	for _, rating := range []float64{0, 0.5, 5.5, 6} {
		_, err := svc.SubmitReview(context.Background(), "user-1", "ORD-1", rating, "")
		require.Error(t, err)
		assert.True(t, IsValidation(err), "rating %v", rating)
	}
}

func TestUpdateStatusRejectsFixtureOrders(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), time.Now())
	ctx := context.Background()

	// ORD-FIX-002 is visible in the list but only exists as demo data.
	_, err := svc.UpdateStatus(ctx, "user-1", "ORD-FIX-002", models.OrderInProgress)
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	// A re-read must still show the fixture untouched.
	got, err := svc.Get(ctx, "user-1", "ORD-FIX-002")
	require.NoError(t, err)
	assert.Equal(t, models.OrderConfirmed, got.Status)
}

func TestSubmitReviewRejectsFixtureOrders(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), time.Now())

	// ORD-FIX-001 is concluido, but still demo data.
	_, err := svc.SubmitReview(context.Background(), "user-1", "ORD-FIX-001", 4, "bom")
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestMarkPaidRequiresOwnership(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, time.Now())
	ctx := context.Background()

	o, err := svc.Append(ctx, validOrder("user-1"))
	require.NoError(t, err)

	err = svc.MarkPaid(ctx, "user-2", o.ID, "pix")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	got, err := repo.GetByID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, got.PaymentStatus)
}

func TestMarkPaidOnlyBeforeConfirmation(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, time.Now())
	ctx := context.Background()

	o, err := svc.Append(ctx, validOrder("user-1"))
	require.NoError(t, err)

	require.NoError(t, svc.MarkPaid(ctx, "user-1", o.ID, "pix"))
	got, err := repo.GetByID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, "pix", got.PaymentMethod)

	_, err = svc.UpdateStatus(ctx, "user-1", o.ID, models.OrderConfirmed)
	require.NoError(t, err)

	// Payment cannot land again once the order moved past pendente.
	err = svc.MarkPaid(ctx, "user-1", o.ID, "card")
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestGetHidesOtherUsersOrders(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, time.Now())
	ctx := context.Background()

	o, err := svc.Append(ctx, validOrder("user-1"))
	require.NoError(t, err)

	_, err = svc.Get(ctx, "user-2", o.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestReservedTimesExcludesCancelled(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, time.Now())
	ctx := context.Background()

	first := validOrder("user-1")
	first.Time = "09:00"
	appended, err := svc.Append(ctx, first)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, "user-1", appended.ID, models.OrderCancelled)
	require.NoError(t, err)

	times, err := svc.ReservedTimes("prof-1", "2024-03-04")
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestExpireStalePending(t *testing.T) {
	repo := newFakeOrderRepo()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)
	ctx := context.Background()

	stale := validOrder("user-1")
	stale.ID = "ORD-STALE"
	stale.Status = models.OrderPending
	stale.CreatedAt = now.Add(-72 * time.Hour)
	require.NoError(t, repo.Insert(stale))

	fresh := validOrder("user-1")
	fresh.ID = "ORD-FRESH"
	fresh.Time = "11:00"
	fresh.Status = models.OrderPending
	fresh.CreatedAt = now.Add(-2 * time.Hour)
	require.NoError(t, repo.Insert(fresh))

	expired, err := svc.ExpireStalePending(ctx, 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	got, err := repo.GetByID("ORD-STALE")
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, got.Status)

	got, err = repo.GetByID("ORD-FRESH")
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, got.Status)
}
