package slot

import (
	"fmt"
	"time"
)

// WorkingHours is the daily span, in whole hours of a fixed zone, during
// which meetings may be scheduled.
type WorkingHours struct {
	StartHour int
	EndHour   int
	Location  *time.Location
}

func NewWorkingHours(startHour, endHour int, loc *time.Location) (WorkingHours, error) {
	if loc == nil {
		return WorkingHours{}, fmt.Errorf("working hours: location is required")
	}
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return WorkingHours{}, fmt.Errorf("working hours: invalid range %02d:00-%02d:00", startHour, endHour)
	}
	return WorkingHours{StartHour: startHour, EndHour: endHour, Location: loc}, nil
}

// WorkingWindow is the concrete [DayStart, DayEnd] span for one date.
type WorkingWindow struct {
	DayStart time.Time
	DayEnd   time.Time
}

// WindowOn builds the window for the calendar date of day, read in the
// working-hours zone.
func (h WorkingHours) WindowOn(day time.Time) WorkingWindow {
	d := day.In(h.Location)
	y, m, dd := d.Date()
	return WorkingWindow{
		DayStart: time.Date(y, m, dd, h.StartHour, 0, 0, 0, h.Location),
		DayEnd:   time.Date(y, m, dd, h.EndHour, 0, 0, 0, h.Location),
	}
}

func (w WorkingWindow) Duration() time.Duration {
	return w.DayEnd.Sub(w.DayStart)
}

// Midnight is the start of the window's calendar day.
func (w WorkingWindow) Midnight() time.Time {
	y, m, d := w.DayStart.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, w.DayStart.Location())
}

func (w WorkingWindow) NextMidnight() time.Time {
	return w.Midnight().AddDate(0, 0, 1)
}
