package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualFiresInDeadlineOrder(t *testing.T) {
	m := NewManual(epoch)
	var got []string

	m.AfterFunc(300*time.Millisecond, func() { got = append(got, "late") })
	m.AfterFunc(100*time.Millisecond, func() { got = append(got, "early") })
	m.AfterFunc(100*time.Millisecond, func() { got = append(got, "early-2") })

	m.Advance(50 * time.Millisecond)
	assert.Empty(t, got)
	assert.Equal(t, 3, m.Pending())

	m.Advance(time.Second)
	assert.Equal(t, []string{"early", "early-2", "late"}, got)
	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, epoch.Add(1050*time.Millisecond), m.Now())
}

func TestManualChainedTimers(t *testing.T) {
	m := NewManual(epoch)
	ticks := 0

	var tick func()
	tick = func() {
		ticks++
		m.AfterFunc(time.Second, tick)
	}
	m.AfterFunc(time.Second, tick)

	m.Advance(3500 * time.Millisecond)
	assert.Equal(t, 3, ticks)
	assert.Equal(t, 1, m.Pending())
}

func TestManualStop(t *testing.T) {
	m := NewManual(epoch)
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	require.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	m.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestDebouncerTrailing(t *testing.T) {
	m := NewManual(epoch)
	calls := 0
	d := NewDebouncer(m, 250*time.Millisecond, false, func() { calls++ })

	d.Call()
	m.Advance(100 * time.Millisecond)
	d.Call()
	m.Advance(100 * time.Millisecond)
	d.Call()
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, m.Pending())

	m.Advance(250 * time.Millisecond)
	assert.Equal(t, 1, calls)
}

func TestDebouncerImmediate(t *testing.T) {
	m := NewManual(epoch)
	calls := 0
	d := NewDebouncer(m, 250*time.Millisecond, true, func() { calls++ })

	d.Call()
	assert.Equal(t, 1, calls)
	d.Call()
	d.Call()
	assert.Equal(t, 1, calls)

	m.Advance(250 * time.Millisecond)
	assert.Equal(t, 1, calls)

	d.Call()
	assert.Equal(t, 2, calls)
}

func TestDebouncerStop(t *testing.T) {
	m := NewManual(epoch)
	calls := 0
	d := NewDebouncer(m, 250*time.Millisecond, false, func() { calls++ })

	d.Call()
	d.Stop()
	m.Advance(time.Second)
	assert.Equal(t, 0, calls)
}

func TestFrameThrottleCoalesces(t *testing.T) {
	m := NewManual(epoch)
	frames := 0
	f := NewFrameThrottle(m, func() { frames++ })

	for i := 0; i < 10; i++ {
		f.Request()
	}
	assert.Equal(t, 1, m.Pending())

	m.Advance(FrameInterval)
	assert.Equal(t, 1, frames)

	f.Request()
	m.Advance(FrameInterval)
	assert.Equal(t, 2, frames)
}

func TestRealSchedulerStopLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewReal()
	done := make(chan struct{})
	s.AfterFunc(time.Millisecond, func() { close(done) })
	<-done

	timer := s.AfterFunc(time.Hour, func() {})
	assert.True(t, timer.Stop())
}
