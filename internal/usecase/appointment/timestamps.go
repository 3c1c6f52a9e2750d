package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/timezone"
)

// parseTimestamp accepts RFC 3339 or a wall-clock "YYYY-MM-DD HH:MM"
// (a "T" separator is also accepted), the latter read in loc.
func parseTimestamp(loc *time.Location, value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}

	t, err := timezone.ParseDateTime(loc, strings.Replace(value, "T", " ", 1))
	if err != nil {
		return time.Time{}, httperr.Wrap(httperr.KindInvalidInput, CodeInvalidDateOrTime, err)
	}
	return t, nil
}
