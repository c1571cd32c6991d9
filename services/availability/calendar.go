package availability

import (
	"fmt"
	"time"

	"alcahub/models"
)

// ClassifyDay classifies a single date for a professional. Priority order:
// blocked > time_off > not_working > available.
func ClassifyDay(prof *models.Professional, date string) (models.DayClass, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}

	for _, blocked := range prof.BlockedDates {
		if blocked == date {
			return models.DayBlocked, nil
		}
	}
	for _, off := range prof.TimeOff {
		if withinRange(date, off.Start, off.End) {
			return models.DayTimeOff, nil
		}
	}
	if !prof.WorksOn(weekdayName(day.Weekday())) {
		return models.DayNotWorking, nil
	}
	return models.DayAvailable, nil
}

// withinRange reports whether date falls in [start, end], inclusive.
// ISO dates compare correctly as strings.
func withinRange(date, start, end string) bool {
	return date >= start && date <= end
}

// MonthGrid builds the calendar view of one month. Available days carry their
// slot list and aggregates; unavailable days carry only the reason class.
// reservedByDate maps "2006-01-02" to that day's reservation set.
func MonthGrid(prof *models.Professional, year, month int, reservedByDate map[string]ReservedSet, now time.Time, slotMinutes int) (models.MonthGrid, error) {
	if month < 1 || month > 12 {
		return models.MonthGrid{}, fmt.Errorf("month %d out of range", month)
	}

	grid := models.MonthGrid{Year: year, Month: month}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())

	for d := first; d.Month() == time.Month(month); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		class, err := ClassifyDay(prof, date)
		if err != nil {
			return models.MonthGrid{}, err
		}

		day := models.CalendarDay{Date: date, Class: class}
		if class == models.DayAvailable {
			avail, err := GenerateDaySlots(prof, date, reservedByDate[date], now, slotMinutes)
			if err != nil {
				return models.MonthGrid{}, err
			}
			day.Availability = &avail
		}
		grid.Days = append(grid.Days, day)
	}
	return grid, nil
}
