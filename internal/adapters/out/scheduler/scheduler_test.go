package scheduler_test

import (
	"sync/atomic"
	"testing"
	"time"

	"droneflow/internal/adapters/out/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimers_AfterFunc(t *testing.T) {
	t.Run("should run the callback once", func(t *testing.T) {
		var calls atomic.Int32

		scheduler.NewTimers().AfterFunc(time.Millisecond, func() { calls.Add(1) })

		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	})

	t.Run("should not run a stopped callback", func(t *testing.T) {
		var calls atomic.Int32

		task := scheduler.NewTimers().AfterFunc(time.Hour, func() { calls.Add(1) })

		assert.True(t, task.Stop())
		assert.False(t, task.Stop())
		assert.Zero(t, calls.Load())
	})
}

func TestSystemClock_Now(t *testing.T) {
	now := scheduler.NewSystemClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}
