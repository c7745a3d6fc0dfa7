//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotStarts(t *testing.T) {
	hours := serviceHours(t)
	loc := newYork(t)
	day := time.Date(2025, 6, 5, 12, 0, 0, 0, loc)

	t.Run("covers the whole service day", func(t *testing.T) {
		starts := schedule.SlotStarts(day, hours, 30*time.Minute, 2*time.Hour)
		require.NotEmpty(t, starts)

		// 11:00 through 21:00 inclusive, every 30 minutes.
		assert.Len(t, starts, 21)
		assert.True(t, starts[0].Equal(time.Date(2025, 6, 5, 11, 0, 0, 0, loc)))
		assert.True(t, starts[len(starts)-1].Equal(time.Date(2025, 6, 5, 21, 0, 0, 0, loc)))
	})

	t.Run("every slot fits within hours", func(t *testing.T) {
		starts := schedule.SlotStarts(day, hours, 30*time.Minute, 2*time.Hour)
		closing := hours.ClosingOn(day)
		for _, s := range starts {
			assert.True(t, hours.Contains(s), "slot start %s outside hours", s)
			assert.False(t, s.Add(2*time.Hour).After(closing), "slot ending after close: %s", s)
		}
	})

	t.Run("slots are ascending and evenly stepped", func(t *testing.T) {
		starts := schedule.SlotStarts(day, hours, 30*time.Minute, 2*time.Hour)
		for i := 1; i < len(starts); i++ {
			assert.Equal(t, 30*time.Minute, starts[i].Sub(starts[i-1]))
		}
	})

	t.Run("duration longer than the day yields nothing", func(t *testing.T) {
		starts := schedule.SlotStarts(day, hours, 30*time.Minute, 13*time.Hour)
		assert.Empty(t, starts)
	})

	t.Run("non-positive step or duration yields nothing", func(t *testing.T) {
		assert.Nil(t, schedule.SlotStarts(day, hours, 0, 2*time.Hour))
		assert.Nil(t, schedule.SlotStarts(day, hours, 30*time.Minute, 0))
	})
}
