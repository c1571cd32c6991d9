package availability

import (
	"testing"
	"time"

	"alcahub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfessional() *models.Professional {
	return &models.Professional{
		ID:     "prof-1",
		Name:   "Joana Lima",
		Hourly: models.HourlyPricing{Min: 80, Avg: 100, Max: 150},
		WeeklyTemplate: map[string]models.WorkingWindow{
			"monday":    {Start: "08:00", End: "12:00"},
			"tuesday":   {Start: "08:00", End: "18:00"},
			"wednesday": {Start: "08:00", End: "18:00"},
			"thursday":  {Start: "08:00", End: "18:00"},
			"friday":    {Start: "08:00", End: "18:00"},
		},
		WorkingDays: []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
	}
}

func TestGenerateDaySlotsWindow(t *testing.T) {
	prof := testProfessional()
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	// 2024-01-08 is a Monday with an 08:00-12:00 window.
	day, err := GenerateDaySlots(prof, "2024-01-08", nil, now, 30)
	require.NoError(t, err)

	require.Len(t, day.Slots, 8)
	assert.Equal(t, "08:00", day.Slots[0].Time)
	assert.Equal(t, "11:30", day.Slots[7].Time)
	assert.Equal(t, 8, day.TotalSlots)
	assert.Equal(t, 0, day.BookedSlots)
	assert.True(t, day.Available)

	for _, slot := range day.Slots {
		assert.True(t, slot.Available)
		assert.Equal(t, 50.0, slot.Price)
		assert.Equal(t, 30, slot.DurationMinutes)
	}
}

func TestGenerateDaySlotsReserved(t *testing.T) {
	prof := testProfessional()
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	reserved := NewReservedSet([]string{"09:00", "10:30"})

	day, err := GenerateDaySlots(prof, "2024-01-08", reserved, now, 30)
	require.NoError(t, err)

	assert.Equal(t, 2, day.BookedSlots)
	for _, slot := range day.Slots {
		if slot.Time == "09:00" || slot.Time == "10:30" {
			assert.False(t, slot.Available, "reserved slot %s must be unavailable", slot.Time)
		} else {
			assert.True(t, slot.Available, "slot %s should stay available", slot.Time)
		}
	}
}

func TestGenerateDaySlotsPastTimeGating(t *testing.T) {
	prof := testProfessional()
	// Clock reads 10:00 on the requested Monday.
	now := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)

	day, err := GenerateDaySlots(prof, "2024-01-08", nil, now, 30)
	require.NoError(t, err)

	for _, slot := range day.Slots {
		switch slot.Time {
		case "08:00", "08:30", "09:00", "09:30":
			assert.False(t, slot.Available, "slot %s is in the past", slot.Time)
		default:
			// 10:00 itself has not started yet and stays bookable.
			assert.True(t, slot.Available, "slot %s should stay available", slot.Time)
		}
	}
}

func TestGenerateDaySlotsFutureDayIgnoresClock(t *testing.T) {
	prof := testProfessional()
	now := time.Date(2024, 1, 8, 23, 0, 0, 0, time.UTC)

	day, err := GenerateDaySlots(prof, "2024-01-09", nil, now, 30)
	require.NoError(t, err)
	for _, slot := range day.Slots {
		assert.True(t, slot.Available)
	}
}

func TestGenerateDaySlotsDeterministic(t *testing.T) {
	prof := testProfessional()
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	reserved := NewReservedSet([]string{"09:00"})

	first, err := GenerateDaySlots(prof, "2024-01-08", reserved, now, 30)
	require.NoError(t, err)
	second, err := GenerateDaySlots(prof, "2024-01-08", reserved, now, 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateDaySlotsNoTemplateEntry(t *testing.T) {
	prof := testProfessional()
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	// 2024-01-06 is a Saturday with no template window.
	day, err := GenerateDaySlots(prof, "2024-01-06", nil, now, 30)
	require.NoError(t, err)
	assert.Empty(t, day.Slots)
	assert.False(t, day.Available)
}

func TestGenerateDaySlotsInvalidInput(t *testing.T) {
	prof := testProfessional()
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	_, err := GenerateDaySlots(prof, "08/01/2024", nil, now, 30)
	assert.Error(t, err)

	_, err = GenerateDaySlots(prof, "2024-01-08", nil, now, 0)
	assert.Error(t, err)
}
