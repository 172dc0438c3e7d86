package moderation

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

func Test_Schedule_Fires_Once_After_Duration(t *testing.T) {
	req := require.New(t)
	clk := clock.NewMock()
	timers := NewTimers(clk)
	var fired atomic.Int32

	handle := timers.Schedule(time.Minute, func() { fired.Add(1) })
	req.NotZero(handle)
	req.Equal(1, timers.Live())

	// Not yet
	clk.Add(59 * time.Second)
	req.Zero(fired.Load())

	clk.Add(time.Second)
	req.Eventually(func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
	req.Zero(timers.Live())

	// Much later, still once
	clk.Add(time.Hour)
	req.Never(func() bool { return fired.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func Test_Cancel_Prevents_Callback(t *testing.T) {
	req := require.New(t)
	clk := clock.NewMock()
	timers := NewTimers(clk)
	var fired atomic.Bool

	handle := timers.Schedule(time.Minute, func() { fired.Store(true) })

	req.True(timers.Cancel(handle))
	req.False(timers.Cancel(handle), "second cancel is a no-op")
	req.False(timers.Cancel(12345), "unknown handle")

	clk.Add(2 * time.Minute)
	req.Never(fired.Load, 50*time.Millisecond, 5*time.Millisecond)
}

func Test_Cancel_After_Fire_Returns_False(t *testing.T) {
	req := require.New(t)
	clk := clock.NewMock()
	timers := NewTimers(clk)
	var fired atomic.Bool

	handle := timers.Schedule(time.Second, func() { fired.Store(true) })
	clk.Add(time.Second)
	req.Eventually(fired.Load, time.Second, time.Millisecond)

	req.False(timers.Cancel(handle))
}

func Test_Handles_Are_Distinct(t *testing.T) {
	req := require.New(t)
	timers := NewTimers(clock.NewMock())

	first := timers.Schedule(time.Minute, func() {})
	second := timers.Schedule(time.Minute, func() {})
	req.NotEqual(first, second)
	req.Equal(2, timers.Live())
}

func Test_Stop_Disarms_Everything(t *testing.T) {
	req := require.New(t)
	clk := clock.NewMock()
	timers := NewTimers(clk)
	var fired atomic.Int32

	for range 3 {
		timers.Schedule(time.Minute, func() { fired.Add(1) })
	}
	timers.Stop()
	req.Zero(timers.Live())

	clk.Add(time.Hour)
	req.Never(func() bool { return fired.Load() > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}
