package slot

import (
	"slices"
	"time"

	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/timezone"
)

// Finder computes free intervals inside the working window of a day.
// It is a pure function of its inputs and safe for concurrent use.
type Finder struct {
	hours WorkingHours
}

func NewFinder(hours WorkingHours) *Finder {
	return &Finder{hours: hours}
}

// Window resolves a YYYY-MM-DD date to its working window.
func (f *Finder) Window(date string) (WorkingWindow, error) {
	day, err := timezone.ParseDate(f.hours.Location, date)
	if err != nil {
		return WorkingWindow{}, httperr.Wrap(httperr.KindInvalidInput, CodeInvalidDate, err)
	}
	return f.hours.WindowOn(day), nil
}

// FindFreeSlots returns the gaps between busy intervals on date that last
// at least minDurationMinutes. Zero accepts any positive gap; negative
// values are rejected.
func (f *Finder) FindFreeSlots(
	date string,
	busy []Interval,
	minDurationMinutes int,
) ([]Interval, error) {

	if minDurationMinutes < 0 {
		return nil, httperr.InvalidInput(CodeInvalidDuration)
	}

	window, err := f.Window(date)
	if err != nil {
		return nil, err
	}

	minDuration := time.Duration(minDurationMinutes) * time.Minute
	return FreeSlotsIn(window, busy, minDuration), nil
}

// FreeSlotsIn walks the busy list in start order with a cursor that only
// moves forward, so overlapping and nested busy intervals are absorbed
// without double counting.
func FreeSlotsIn(window WorkingWindow, busy []Interval, minDuration time.Duration) []Interval {
	loc := window.DayStart.Location()

	sorted := make([]Interval, len(busy))
	for i, b := range busy {
		sorted[i] = b.In(loc)
	}
	slices.SortFunc(sorted, Interval.Compare)

	free := []Interval{}
	emit := func(start, end time.Time) {
		if end.Sub(start) >= minDuration {
			free = append(free, Interval{start: start, end: end})
		}
	}

	cursor := window.DayStart
	for _, b := range sorted {
		// busy time after the window still closes the last gap at DayEnd
		gapEnd := b.start
		if gapEnd.After(window.DayEnd) {
			gapEnd = window.DayEnd
		}
		if gapEnd.After(cursor) {
			emit(cursor, gapEnd)
		}
		if b.end.After(cursor) {
			cursor = b.end
		}
	}

	if cursor.Before(window.DayEnd) {
		emit(cursor, window.DayEnd)
	}

	return free
}
