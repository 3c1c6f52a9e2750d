package slot

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
)

const testDate = "2025-06-11"

func newTestFinder(t *testing.T) (*Finder, *time.Location) {
	t.Helper()
	loc := mustLoc(t, "Asia/Kolkata")
	hours, err := NewWorkingHours(9, 22, loc)
	require.NoError(t, err)
	return NewFinder(hours), loc
}

// clock returns h:m on the test date in loc.
func clock(loc *time.Location, h, m int) time.Time {
	return time.Date(2025, 6, 11, h, m, 0, 0, loc)
}

func span(t *testing.T, loc *time.Location, fh, fm, th, tm int) Interval {
	t.Helper()
	iv, err := NewInterval(clock(loc, fh, fm), clock(loc, th, tm))
	require.NoError(t, err)
	return iv
}

func assertSlots(t *testing.T, want, got []Interval) {
	t.Helper()
	require.Len(t, got, len(want), "got %v", got)
	for i := range want {
		assert.True(t, want[i].Start().Equal(got[i].Start()), "slot %d start: want %v got %v", i, want[i].Start(), got[i].Start())
		assert.True(t, want[i].End().Equal(got[i].End()), "slot %d end: want %v got %v", i, want[i].End(), got[i].End())
	}
}

func TestFindFreeSlotsScenarios(t *testing.T) {
	finder, loc := newTestFinder(t)

	tests := []struct {
		name     string
		busy     []Interval
		duration int
		want     []Interval
	}{
		{
			name:     "no busy intervals",
			busy:     nil,
			duration: 60,
			want:     []Interval{span(t, loc, 9, 0, 22, 0)},
		},
		{
			name: "two meetings",
			busy: []Interval{
				span(t, loc, 10, 0, 11, 0),
				span(t, loc, 11, 30, 12, 30),
			},
			duration: 30,
			want: []Interval{
				span(t, loc, 9, 0, 10, 0),
				span(t, loc, 11, 0, 11, 30),
				span(t, loc, 12, 30, 22, 0),
			},
		},
		{
			name: "overlapping meetings collapse",
			busy: []Interval{
				span(t, loc, 10, 0, 12, 0),
				span(t, loc, 11, 0, 13, 0),
			},
			duration: 30,
			want: []Interval{
				span(t, loc, 9, 0, 10, 0),
				span(t, loc, 13, 0, 22, 0),
			},
		},
		{
			name:     "busy covers the whole window",
			busy:     []Interval{span(t, loc, 9, 0, 22, 0)},
			duration: 30,
			want:     []Interval{},
		},
		{
			name: "unsorted input",
			busy: []Interval{
				span(t, loc, 15, 0, 16, 0),
				span(t, loc, 10, 0, 11, 0),
			},
			duration: 60,
			want: []Interval{
				span(t, loc, 9, 0, 10, 0),
				span(t, loc, 11, 0, 15, 0),
				span(t, loc, 16, 0, 22, 0),
			},
		},
		{
			name: "nested meeting does not move the cursor back",
			busy: []Interval{
				span(t, loc, 10, 0, 14, 0),
				span(t, loc, 11, 0, 12, 0),
			},
			duration: 0,
			want: []Interval{
				span(t, loc, 9, 0, 10, 0),
				span(t, loc, 14, 0, 22, 0),
			},
		},
		{
			name: "gap shorter than duration is dropped",
			busy: []Interval{
				span(t, loc, 9, 30, 10, 0),
				span(t, loc, 10, 20, 21, 0),
			},
			duration: 30,
			want: []Interval{
				span(t, loc, 9, 0, 9, 30),
				span(t, loc, 21, 0, 22, 0),
			},
		},
		{
			name: "adjacent meetings leave no zero-length gap",
			busy: []Interval{
				span(t, loc, 9, 0, 10, 0),
				span(t, loc, 10, 0, 11, 0),
			},
			duration: 0,
			want:     []Interval{span(t, loc, 11, 0, 22, 0)},
		},
		{
			name: "meeting started before the window",
			busy: []Interval{
				span(t, loc, 7, 0, 9, 30),
			},
			duration: 60,
			want:     []Interval{span(t, loc, 9, 30, 22, 0)},
		},
		{
			name: "meeting after the window closes the gap at day end",
			busy: []Interval{
				span(t, loc, 20, 0, 21, 0),
				span(t, loc, 22, 30, 23, 0),
			},
			duration: 30,
			want: []Interval{
				span(t, loc, 9, 0, 20, 0),
				span(t, loc, 21, 0, 22, 0),
			},
		},
		{
			name:     "fragmented day with long duration",
			busy:     []Interval{span(t, loc, 12, 0, 13, 0)},
			duration: 600,
			want:     []Interval{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := finder.FindFreeSlots(testDate, tt.busy, tt.duration)
			require.NoError(t, err)
			require.NotNil(t, got)
			assertSlots(t, tt.want, got)
		})
	}
}

func TestFindFreeSlotsUsesBusyFromOtherZones(t *testing.T) {
	finder, loc := newTestFinder(t)

	// 10:00-11:00 IST expressed in UTC
	busy, err := NewInterval(
		time.Date(2025, 6, 11, 4, 30, 0, 0, time.UTC),
		time.Date(2025, 6, 11, 5, 30, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	got, err := finder.FindFreeSlots(testDate, []Interval{busy}, 30)
	require.NoError(t, err)

	assertSlots(t, []Interval{span(t, loc, 9, 0, 10, 0), span(t, loc, 11, 0, 22, 0)}, got)
	assert.Equal(t, loc, got[1].Start().Location())
}

func TestFindFreeSlotsErrors(t *testing.T) {
	finder, _ := newTestFinder(t)

	_, err := finder.FindFreeSlots("2025-13-40", nil, 30)
	assert.True(t, httperr.IsBusiness(err, CodeInvalidDate))

	_, err = finder.FindFreeSlots("", nil, 30)
	assert.True(t, httperr.IsBusiness(err, CodeInvalidDate))

	_, err = finder.FindFreeSlots(testDate, nil, -1)
	assert.True(t, httperr.IsBusiness(err, CodeInvalidDuration))
	assert.Equal(t, httperr.KindInvalidInput, httperr.KindOf(err))
}

func TestFindFreeSlotsDoesNotMutateInput(t *testing.T) {
	finder, loc := newTestFinder(t)
	busy := []Interval{span(t, loc, 15, 0, 16, 0), span(t, loc, 10, 0, 11, 0)}

	_, err := finder.FindFreeSlots(testDate, busy, 30)
	require.NoError(t, err)

	assert.Equal(t, 15, busy[0].Start().Hour())
}

func TestNewWorkingHoursValidation(t *testing.T) {
	loc := mustLoc(t, "Asia/Kolkata")

	_, err := NewWorkingHours(22, 9, loc)
	assert.Error(t, err)
	_, err = NewWorkingHours(9, 9, loc)
	assert.Error(t, err)
	_, err = NewWorkingHours(-1, 9, loc)
	assert.Error(t, err)
	_, err = NewWorkingHours(9, 25, loc)
	assert.Error(t, err)
	_, err = NewWorkingHours(9, 22, nil)
	assert.Error(t, err)

	hours, err := NewWorkingHours(0, 24, loc)
	require.NoError(t, err)
	w := hours.WindowOn(clock(loc, 12, 0))
	assert.Equal(t, 24*time.Hour, w.Duration())
	assert.True(t, w.NextMidnight().Equal(w.DayEnd))
}

func TestWindowMidnight(t *testing.T) {
	finder, loc := newTestFinder(t)

	w, err := finder.Window(testDate)
	require.NoError(t, err)

	assert.True(t, w.DayStart.Equal(clock(loc, 9, 0)))
	assert.True(t, w.DayEnd.Equal(clock(loc, 22, 0)))
	assert.True(t, w.Midnight().Equal(clock(loc, 0, 0)))
	assert.True(t, w.NextMidnight().Equal(time.Date(2025, 6, 12, 0, 0, 0, 0, loc)))
}

// randomBusy returns up to n intervals anywhere around the window,
// possibly overlapping.
func randomBusy(r *rand.Rand, loc *time.Location, n int) []Interval {
	out := make([]Interval, 0, n)
	for i := 0; i < n; i++ {
		start := clock(loc, 8, 0).Add(time.Duration(r.Intn(15*60)) * time.Minute)
		iv, _ := NewInterval(start, start.Add(time.Duration(r.Intn(180))*time.Minute))
		out = append(out, iv)
	}
	return out
}

// randomDisjointBusy returns sorted, non-overlapping intervals inside the
// window.
func randomDisjointBusy(r *rand.Rand, w WorkingWindow, n int) []Interval {
	total := int(w.Duration() / time.Minute)
	points := make([]int, 2*n)
	for i := range points {
		points[i] = r.Intn(total + 1)
	}
	for i := 1; i < len(points); i++ {
		for j := i; j > 0 && points[j-1] > points[j]; j-- {
			points[j-1], points[j] = points[j], points[j-1]
		}
	}

	out := make([]Interval, 0, n)
	for i := 0; i < len(points); i += 2 {
		iv, _ := NewInterval(
			w.DayStart.Add(time.Duration(points[i])*time.Minute),
			w.DayStart.Add(time.Duration(points[i+1])*time.Minute),
		)
		out = append(out, iv)
	}
	return out
}

func TestFindFreeSlotsProperties(t *testing.T) {
	finder, loc := newTestFinder(t)
	window, err := finder.Window(testDate)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))

	for round := 0; round < 500; round++ {
		busy := randomBusy(r, loc, r.Intn(8))
		minutes := r.Intn(120)

		free, err := finder.FindFreeSlots(testDate, busy, minutes)
		require.NoError(t, err)

		again, err := finder.FindFreeSlots(testDate, busy, minutes)
		require.NoError(t, err)
		assert.Equal(t, free, again, "finder must be deterministic")

		for i, f := range free {
			assert.GreaterOrEqual(t, f.Duration(), time.Duration(minutes)*time.Minute)
			assert.Greater(t, f.Duration(), time.Duration(0))
			assert.False(t, f.Start().Before(window.DayStart))
			assert.False(t, f.End().After(window.DayEnd))
			for _, b := range busy {
				assert.False(t, f.Overlaps(b), "free %v overlaps busy %v", f, b)
			}
			if i > 0 {
				assert.False(t, f.Start().Before(free[i-1].End()), "result must be chronological")
			}
		}
	}
}

func TestFindFreeSlotsAccountsForWholeWindow(t *testing.T) {
	finder, _ := newTestFinder(t)
	window, err := finder.Window(testDate)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(7))

	for round := 0; round < 300; round++ {
		busy := randomDisjointBusy(r, window, r.Intn(6))
		minutes := r.Intn(90)

		allGaps, err := finder.FindFreeSlots(testDate, busy, 0)
		require.NoError(t, err)
		free, err := finder.FindFreeSlots(testDate, busy, minutes)
		require.NoError(t, err)

		var covered time.Duration
		for _, b := range busy {
			covered += b.Duration()
		}
		for _, g := range allGaps {
			covered += g.Duration()
		}
		assert.Equal(t, window.Duration(), covered, "busy + gaps must equal the window")

		var kept []Interval
		for _, g := range allGaps {
			if g.Duration() >= time.Duration(minutes)*time.Minute {
				kept = append(kept, g)
			}
		}
		assertSlots(t, kept, free)
	}
}
