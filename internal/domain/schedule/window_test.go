//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start, end time.Time) schedule.Window {
	t.Helper()
	w, err := schedule.NewWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestNewWindow(t *testing.T) {
	base := time.Date(2025, 6, 5, 17, 0, 0, 0, time.UTC)

	t.Run("valid window", func(t *testing.T) {
		w, err := schedule.NewWindow(base, base.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, w.Start())
		assert.Equal(t, base.Add(2*time.Hour), w.End())
		assert.Equal(t, 2*time.Hour, w.Duration())
	})

	t.Run("start equal to end", func(t *testing.T) {
		_, err := schedule.NewWindow(base, base)
		assert.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := schedule.NewWindow(base.Add(time.Hour), base)
		assert.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})
}

func TestWindowOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 5, 17, 0, 0, 0, time.UTC)
	w := func(startOffset, endOffset time.Duration) schedule.Window {
		return mustWindow(t, base.Add(startOffset), base.Add(endOffset))
	}

	cases := []struct {
		name     string
		a, b     schedule.Window
		overlaps bool
	}{
		{"identical windows", w(0, 2*time.Hour), w(0, 2*time.Hour), true},
		{"partial overlap at start", w(0, 2*time.Hour), w(-time.Hour, time.Hour), true},
		{"partial overlap at end", w(0, 2*time.Hour), w(time.Hour, 3*time.Hour), true},
		{"one contains the other", w(0, 4*time.Hour), w(time.Hour, 2*time.Hour), true},
		{"back to back, earlier first", w(0, 2*time.Hour), w(2*time.Hour, 4*time.Hour), false},
		{"back to back, later first", w(2*time.Hour, 4*time.Hour), w(0, 2*time.Hour), false},
		{"disjoint", w(0, time.Hour), w(3*time.Hour, 4*time.Hour), false},
		{"one minute of overlap", w(0, 2*time.Hour), w(2*time.Hour-time.Minute, 4*time.Hour), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, c.a.Overlaps(c.b))
			assert.Equal(t, c.overlaps, c.b.Overlaps(c.a), "overlap must be symmetric")
		})
	}
}

func TestWindowString(t *testing.T) {
	start := time.Date(2025, 6, 5, 17, 0, 0, 0, time.UTC)
	w := mustWindow(t, start, start.Add(2*time.Hour))
	assert.Equal(t, "[2025-06-05T17:00:00Z,2025-06-05T19:00:00Z)", w.String())
}
