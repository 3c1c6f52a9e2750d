package timezone

import (
	"fmt"
	"time"
)

const DefaultTimezone = "Asia/Kolkata"

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	DateTimeLayout = "2006-01-02 15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Load is the strict variant of Location used at startup.
func Load(tz string) (*time.Location, error) {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", tz, err)
	}
	return loc, nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// ParseDate returns midnight of a YYYY-MM-DD date in loc.
func ParseDate(loc *time.Location, date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, loc)
}

// ParseDateTime localizes a wall-clock "YYYY-MM-DD HH:MM" string to loc.
// Zone-less input enters the system only through here.
func ParseDateTime(loc *time.Location, value string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, value, loc)
}

// SplitDateTime returns the date and clock parts stored on appointment rows.
func SplitDateTime(t time.Time) (date, clock string) {
	return t.Format(DateLayout), t.Format(ClockLayout)
}
