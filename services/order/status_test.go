package order

import (
	"testing"

	"alcahub/models"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{
		models.OrderPending,
		models.OrderConfirmed,
		models.OrderInProgress,
		models.OrderCompleted,
		models.OrderCancelled,
	} {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("finalizado"))
	assert.False(t, IsValidStatus(""))
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{models.OrderPending, models.OrderConfirmed},
		{models.OrderPending, models.OrderCancelled},
		{models.OrderConfirmed, models.OrderInProgress},
		{models.OrderConfirmed, models.OrderCancelled},
		{models.OrderInProgress, models.OrderCompleted},
		{models.OrderInProgress, models.OrderCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to string }{
		{models.OrderPending, models.OrderInProgress},
		{models.OrderPending, models.OrderCompleted},
		{models.OrderConfirmed, models.OrderCompleted},
		{models.OrderCompleted, models.OrderCancelled},
		{models.OrderCompleted, models.OrderPending},
		{models.OrderCancelled, models.OrderPending},
		{models.OrderInProgress, models.OrderConfirmed},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusStylesCoverEveryStatus(t *testing.T) {
	for status := range transitions {
		style, ok := models.StatusStyles[status]
		assert.True(t, ok, status)
		assert.NotEmpty(t, style.Label)
		assert.NotEmpty(t, style.Color)
	}
}
