package availability

import (
	"testing"
	"time"

	"alcahub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calendarProfessional() *models.Professional {
	prof := testProfessional()
	prof.BlockedDates = []string{"2024-01-10", "2024-01-20"}
	prof.TimeOff = []models.TimeOffRange{
		{Start: "2024-01-15", End: "2024-01-17", Reason: "férias"},
	}
	return prof
}

func TestClassifyDayPrecedence(t *testing.T) {
	prof := calendarProfessional()

	cases := []struct {
		date string
		want models.DayClass
	}{
		{"2024-01-10", models.DayBlocked},    // blocked Wednesday
		{"2024-01-20", models.DayBlocked},    // blocked beats not_working on Saturday
		{"2024-01-15", models.DayTimeOff},    // time off start, inclusive
		{"2024-01-17", models.DayTimeOff},    // time off end, inclusive
		{"2024-01-18", models.DayAvailable},  // day after time off
		{"2024-01-06", models.DayNotWorking}, // regular Saturday
		{"2024-01-08", models.DayAvailable},  // regular Monday
	}
	for _, tc := range cases {
		got, err := ClassifyDay(prof, tc.date)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "date %s", tc.date)
	}
}

func TestClassifyDayInvalidDate(t *testing.T) {
	_, err := ClassifyDay(calendarProfessional(), "not-a-date")
	assert.Error(t, err)
}

func TestMonthGridJanuary(t *testing.T) {
	prof := calendarProfessional()
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	grid, err := MonthGrid(prof, 2024, 1, nil, now, 30)
	require.NoError(t, err)

	assert.Equal(t, 2024, grid.Year)
	assert.Equal(t, 1, grid.Month)
	require.Len(t, grid.Days, 31)

	byDate := make(map[string]models.CalendarDay, len(grid.Days))
	for _, d := range grid.Days {
		byDate[d.Date] = d
	}

	assert.Equal(t, models.DayBlocked, byDate["2024-01-20"].Class)
	assert.Nil(t, byDate["2024-01-20"].Availability)

	assert.Equal(t, models.DayTimeOff, byDate["2024-01-16"].Class)
	assert.Equal(t, models.DayNotWorking, byDate["2024-01-07"].Class)

	monday := byDate["2024-01-08"]
	assert.Equal(t, models.DayAvailable, monday.Class)
	require.NotNil(t, monday.Availability)
	assert.Len(t, monday.Availability.Slots, 8)
}

func TestMonthGridCarriesReservations(t *testing.T) {
	prof := calendarProfessional()
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	reserved := map[string]ReservedSet{
		"2024-01-08": NewReservedSet([]string{"08:00"}),
	}

	grid, err := MonthGrid(prof, 2024, 1, reserved, now, 30)
	require.NoError(t, err)

	for _, d := range grid.Days {
		if d.Date != "2024-01-08" {
			continue
		}
		require.NotNil(t, d.Availability)
		assert.Equal(t, 1, d.Availability.BookedSlots)
		assert.False(t, d.Availability.Slots[0].Available)
	}
}

func TestMonthGridRejectsBadMonth(t *testing.T) {
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	_, err := MonthGrid(calendarProfessional(), 2024, 13, nil, now, 30)
	assert.Error(t, err)
}
