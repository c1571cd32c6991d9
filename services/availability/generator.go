package availability

import (
	"fmt"
	"time"

	"alcahub/models"
	"alcahub/utils"
)

const dateLayout = "2006-01-02"

// ReservedSet holds the slot start times ("HH:MM") already booked for one
// professional on one date. Availability is a pure function of this set, the
// weekly template and the clock, so re-reads of the same day never flicker.
type ReservedSet map[string]struct{}

// NewReservedSet builds a ReservedSet from a list of start times.
func NewReservedSet(times []string) ReservedSet {
	set := make(ReservedSet, len(times))
	for _, t := range times {
		set[t] = struct{}{}
	}
	return set
}

// Contains reports whether the start time is reserved.
func (s ReservedSet) Contains(t string) bool {
	_, ok := s[t]
	return ok
}

// GenerateDaySlots produces a day's ordered slot list from the professional's
// weekly template. A slot is available iff it is not reserved and, when the
// date is today, not already in the past.
func GenerateDaySlots(prof *models.Professional, date string, reserved ReservedSet, now time.Time, slotMinutes int) (models.DayAvailability, error) {
	day, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return models.DayAvailability{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if slotMinutes <= 0 {
		return models.DayAvailability{}, fmt.Errorf("slot duration must be positive, got %d", slotMinutes)
	}

	weekday := weekdayName(day.Weekday())
	window, ok := prof.WeeklyTemplate[weekday]
	if !ok {
		return models.DayAvailability{Date: date}, nil
	}

	startMin, err := utils.ParseClock(window.Start)
	if err != nil {
		return models.DayAvailability{}, fmt.Errorf("bad template start for %s: %w", weekday, err)
	}
	endMin, err := utils.ParseClock(window.End)
	if err != nil {
		return models.DayAvailability{}, fmt.Errorf("bad template end for %s: %w", weekday, err)
	}
	if endMin <= startMin {
		return models.DayAvailability{}, fmt.Errorf("template window for %s is empty", weekday)
	}

	isToday := day.Year() == now.Year() && day.YearDay() == now.YearDay()
	nowMin := now.Hour()*60 + now.Minute()
	slotPrice := utils.RoundMoney(prof.Hourly.Avg * float64(slotMinutes) / 60)

	result := models.DayAvailability{Date: date}
	for m := startMin; m+slotMinutes <= endMin; m += slotMinutes {
		slotTime := utils.FormatClock(m)
		booked := reserved.Contains(slotTime)
		pastTime := isToday && m < nowMin

		slot := models.TimeSlot{
			Time:            slotTime,
			Available:       !booked && !pastTime,
			Price:           slotPrice,
			DurationMinutes: slotMinutes,
		}
		result.Slots = append(result.Slots, slot)
		result.TotalSlots++
		if booked {
			result.BookedSlots++
		}
		if slot.Available {
			result.Available = true
		}
	}
	return result, nil
}

// weekdayName maps a time.Weekday to the lowercase template key.
func weekdayName(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
