// Package slot holds the time arithmetic behind free-slot lookup: intervals,
// the daily working window, the gap finder and the display formatter.
package slot

import (
	"time"

	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
)

const (
	CodeInvalidInterval = "invalid_interval"
	CodeInvalidDate     = "invalid_date"
	CodeInvalidDuration = "invalid_duration"
)

// Interval is an immutable [start, end] time range with start <= end.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if end.Before(start) {
		return Interval{}, httperr.InvalidInput(CodeInvalidInterval)
	}
	return Interval{start: start, end: end}, nil
}

func (i Interval) Start() time.Time { return i.start }

func (i Interval) End() time.Time { return i.end }

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

// Overlaps reports whether the two ranges share time. Touching ranges
// (one ends exactly when the other starts) do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.start.Before(o.end) && o.start.Before(i.end)
}

// Compare orders by start, then by end.
func (i Interval) Compare(o Interval) int {
	if c := i.start.Compare(o.start); c != 0 {
		return c
	}
	return i.end.Compare(o.end)
}

func (i Interval) Before(o Interval) bool {
	return i.Compare(o) < 0
}

// In returns the same instants expressed in loc.
func (i Interval) In(loc *time.Location) Interval {
	return Interval{start: i.start.In(loc), end: i.end.In(loc)}
}

func (i Interval) String() string {
	return i.start.Format(time.RFC3339) + "/" + i.end.Format(time.RFC3339)
}
