package orderRepo

import (
	"testing"

	"alcahub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// The slot uniqueness index must only use operators MongoDB accepts in
// partial filter expressions; $ne is rejected by createIndexes, which would
// silently leave the collection without any of its indexes.
func TestSlotIndexUsesSupportedPartialFilter(t *testing.T) {
	var slotFilter bson.M
	for _, model := range orderIndexModels() {
		if model.Options == nil || model.Options.PartialFilterExpression == nil {
			continue
		}
		filter, ok := model.Options.PartialFilterExpression.(bson.M)
		require.True(t, ok)
		slotFilter = filter
	}
	require.NotNil(t, slotFilter, "slot uniqueness index must be partial")

	statusCond, ok := slotFilter["status"].(bson.M)
	require.True(t, ok)
	assert.NotContains(t, statusCond, "$ne")

	statuses, ok := statusCond["$in"].([]string)
	require.True(t, ok, "cancelado exclusion must be expressed as $in")
	assert.ElementsMatch(t, []string{
		models.OrderPending,
		models.OrderConfirmed,
		models.OrderInProgress,
		models.OrderCompleted,
	}, statuses)
	assert.NotContains(t, statuses, models.OrderCancelled)
}
