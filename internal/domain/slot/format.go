package slot

import "time"

const displayLayout = "03:04 PM"

// FormatSlots renders each interval as "03:04 PM - 04:00 PM" in the zone the
// interval carries. Dates and seconds are dropped.
func FormatSlots(slots []Interval) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.start.Format(displayLayout)+" - "+s.end.Format(displayLayout))
	}
	return out
}

func FormatSlotsIn(slots []Interval, loc *time.Location) []string {
	converted := make([]Interval, len(slots))
	for i, s := range slots {
		converted[i] = s.In(loc)
	}
	return FormatSlots(converted)
}
