package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.Equal(t, "Europe/Berlin", Location("Europe/Berlin").String())
}

func TestLoad(t *testing.T) {
	loc, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, loc.String())

	_, err = Load("Mars/Olympus")
	assert.Error(t, err)
}

func TestParseDateTimeLocalizesWallClock(t *testing.T) {
	loc, err := Load("Asia/Kolkata")
	require.NoError(t, err)

	got, err := ParseDateTime(loc, "2025-06-11 10:00")
	require.NoError(t, err)

	assert.Equal(t, loc, got.Location())
	assert.Equal(t, time.Date(2025, 6, 11, 4, 30, 0, 0, time.UTC), got.UTC())

	date, clock := SplitDateTime(got)
	assert.Equal(t, "2025-06-11", date)
	assert.Equal(t, "10:00", clock)
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate(time.UTC, "11/06/2025")
	assert.Error(t, err)

	_, err = ParseDateTime(time.UTC, "2025-06-11T10:00")
	assert.Error(t, err)
}
