package appointment

import (
	"time"

	"github.com/BruksfildServices01/meeting-scheduler/internal/timezone"
)

// ===============================
// Domain Actions
// ===============================

// ResolveEnd returns end, or start plus the default meeting length when the
// caller gave no end.
func ResolveEnd(start time.Time, end *time.Time, defaultDuration time.Duration) time.Time {
	if end != nil {
		return *end
	}
	return start.Add(defaultDuration)
}

// SlotKey is the (date, start_time) pair an appointment row is stored under.
func SlotKey(start time.Time) (date, startTime string) {
	return timezone.SplitDateTime(start)
}
