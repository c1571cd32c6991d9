package models

// TimeSlot represents a discrete bookable unit within a professional's
// working hours. Availability is derived from the day's reservation set,
// never drawn at random, so repeated reads of the same day are stable.
type TimeSlot struct {
	Time            string  `json:"time"` // "HH:MM"
	Available       bool    `json:"available"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// DayAvailability is a full day's slot list plus display aggregates.
type DayAvailability struct {
	Date        string     `json:"date"` // "2006-01-02"
	Available   bool       `json:"available"`
	Slots       []TimeSlot `json:"slots,omitempty"`
	TotalSlots  int        `json:"totalSlots"`
	BookedSlots int        `json:"bookedSlots"`
}

// DayClass classifies a calendar day, in priority order:
// blocked > time_off > not_working > available.
type DayClass string

const (
	DayAvailable  DayClass = "available"
	DayBlocked    DayClass = "blocked"
	DayTimeOff    DayClass = "time_off"
	DayNotWorking DayClass = "not_working"
)

// CalendarDay is one entry of a month grid.
type CalendarDay struct {
	Date         string           `json:"date"`
	Class        DayClass         `json:"class"`
	Availability *DayAvailability `json:"availability,omitempty"` // set only for available days
}

// MonthGrid is the calendar view of a single month for one professional.
type MonthGrid struct {
	Year  int           `json:"year"`
	Month int           `json:"month"` // 1..12
	Days  []CalendarDay `json:"days"`
}
