package appointment

import "github.com/BruksfildServices01/meeting-scheduler/internal/domain/slot"

type FreeSlotsInput struct {
	Date            string
	DurationMinutes int
}

type FreeSlots struct {
	Date    string
	Slots   []slot.Interval
	Display []string
}
