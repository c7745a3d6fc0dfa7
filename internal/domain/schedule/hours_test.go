//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func serviceHours(t *testing.T) schedule.OperatingHours {
	t.Helper()
	hours, err := schedule.NewOperatingHours(11, 23, newYork(t))
	require.NoError(t, err)
	return hours
}

func TestNewOperatingHours(t *testing.T) {
	loc := newYork(t)

	t.Run("valid hours", func(t *testing.T) {
		hours, err := schedule.NewOperatingHours(11, 23, loc)
		require.NoError(t, err)
		assert.Equal(t, 11, hours.OpenHour())
		assert.Equal(t, 23, hours.CloseHour())
		assert.Equal(t, loc, hours.Location())
	})

	t.Run("nil location defaults to UTC", func(t *testing.T) {
		hours, err := schedule.NewOperatingHours(9, 17, nil)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, hours.Location())
	})

	t.Run("open at or after close", func(t *testing.T) {
		_, err := schedule.NewOperatingHours(23, 11, loc)
		assert.ErrorIs(t, err, schedule.ErrInvalidHours)

		_, err = schedule.NewOperatingHours(11, 11, loc)
		assert.ErrorIs(t, err, schedule.ErrInvalidHours)
	})

	t.Run("out of range hours", func(t *testing.T) {
		_, err := schedule.NewOperatingHours(-1, 23, loc)
		assert.ErrorIs(t, err, schedule.ErrInvalidHours)

		_, err = schedule.NewOperatingHours(11, 25, loc)
		assert.ErrorIs(t, err, schedule.ErrInvalidHours)
	})
}

func TestOperatingHoursContains(t *testing.T) {
	hours := serviceHours(t)

	// June: New York is on EDT, UTC-4.
	cases := []struct {
		name     string
		utc      time.Time
		contains bool
	}{
		{"mid-afternoon local", time.Date(2025, 6, 5, 19, 0, 0, 0, time.UTC), true},  // 15:00 EDT
		{"exactly at opening", time.Date(2025, 6, 5, 15, 0, 0, 0, time.UTC), true},   // 11:00 EDT
		{"last valid hour", time.Date(2025, 6, 6, 2, 30, 0, 0, time.UTC), true},      // 22:30 EDT
		{"exactly at closing", time.Date(2025, 6, 6, 3, 0, 0, 0, time.UTC), false},   // 23:00 EDT
		{"morning before opening", time.Date(2025, 6, 5, 13, 0, 0, 0, time.UTC), false}, // 9:00 EDT
		{"middle of the night", time.Date(2025, 6, 5, 7, 0, 0, 0, time.UTC), false},  // 3:00 EDT
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.contains, hours.Contains(c.utc))
		})
	}
}

func TestOperatingHoursFitsWindow(t *testing.T) {
	hours := serviceHours(t)
	loc := newYork(t)

	t.Run("window fully inside hours", func(t *testing.T) {
		start := time.Date(2025, 6, 5, 18, 0, 0, 0, loc)
		w := mustWindow(t, start, start.Add(2*time.Hour))
		assert.True(t, hours.FitsWindow(w))
	})

	t.Run("window ending exactly at closing", func(t *testing.T) {
		start := time.Date(2025, 6, 5, 21, 0, 0, 0, loc)
		w := mustWindow(t, start, start.Add(2*time.Hour))
		assert.True(t, hours.FitsWindow(w))
	})

	t.Run("window spilling past closing", func(t *testing.T) {
		start := time.Date(2025, 6, 5, 22, 0, 0, 0, loc)
		w := mustWindow(t, start, start.Add(2*time.Hour))
		assert.False(t, hours.FitsWindow(w))
	})

	t.Run("window starting before opening", func(t *testing.T) {
		start := time.Date(2025, 6, 5, 9, 0, 0, 0, loc)
		w := mustWindow(t, start, start.Add(2*time.Hour))
		assert.False(t, hours.FitsWindow(w))
	})
}

func TestOpeningAndClosingOn(t *testing.T) {
	hours := serviceHours(t)
	loc := newYork(t)

	// 1:00 UTC on June 6 is still June 5 in New York.
	probe := time.Date(2025, 6, 6, 1, 0, 0, 0, time.UTC)

	opening := hours.OpeningOn(probe)
	closing := hours.ClosingOn(probe)

	assert.True(t, opening.Equal(time.Date(2025, 6, 5, 11, 0, 0, 0, loc)))
	assert.True(t, closing.Equal(time.Date(2025, 6, 5, 23, 0, 0, 0, loc)))
}

func TestToAbsolute(t *testing.T) {
	loc := newYork(t)

	t.Run("valid date and time", func(t *testing.T) {
		got, err := schedule.ToAbsolute("2025-06-05", "18:30", loc)
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2025, 6, 5, 18, 30, 0, 0, loc)))
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := schedule.ToAbsolute("not-a-date", "18:30", loc)
		assert.ErrorIs(t, err, schedule.ErrInvalidTime)
	})
}

func TestSameWallClock(t *testing.T) {
	loc := newYork(t)

	t.Run("keeps the local hour across days", func(t *testing.T) {
		base := time.Date(2025, 6, 5, 19, 30, 0, 0, loc)
		got := schedule.SameWallClock(base, 3, loc)
		assert.True(t, got.Equal(time.Date(2025, 6, 8, 19, 30, 0, 0, loc)))
	})

	t.Run("keeps the local hour across a DST transition", func(t *testing.T) {
		// 2025-11-02 is the fall-back date in America/New_York.
		base := time.Date(2025, 10, 30, 19, 0, 0, 0, loc)
		got := schedule.SameWallClock(base, 5, loc)

		local := got.In(loc)
		assert.Equal(t, 19, local.Hour())
		assert.Equal(t, time.November, local.Month())
		assert.Equal(t, 4, local.Day())
		// The absolute gap is 5 days plus the repeated DST hour.
		assert.Equal(t, 5*24*time.Hour+time.Hour, got.Sub(base))
	})
}
