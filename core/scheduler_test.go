package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerFiresInOrder(t *testing.T) {
	s := NewScheduler()
	start := time.Unix(0, 0)

	var fired []string
	s.After(start, 30*time.Millisecond, func() { fired = append(fired, "b") })
	s.After(start, 10*time.Millisecond, func() { fired = append(fired, "a") })
	s.After(start, 50*time.Millisecond, func() { fired = append(fired, "c") })

	s.Advance(start.Add(40 * time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 1, s.Pending())

	s.Advance(start.Add(60 * time.Millisecond))
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	start := time.Unix(0, 0)

	fired := false
	h := s.After(start, 10*time.Millisecond, func() { fired = true })
	s.Cancel(h)

	s.Advance(start.Add(time.Second))
	assert.False(t, fired)

	// Cancelling again or cancelling NoTask is harmless
	s.Cancel(h)
	s.Cancel(NoTask)
}

func TestSchedulerRescheduleNeverStacks(t *testing.T) {
	s := NewScheduler()
	start := time.Unix(0, 0)

	count := 0
	var h TaskHandle
	for i := 0; i < 5; i++ {
		h = s.Reschedule(h, start, 20*time.Millisecond, func() { count++ })
	}
	assert.Equal(t, 1, s.Pending())

	s.Advance(start.Add(time.Second))
	assert.Equal(t, 1, count)
}

func TestSchedulerResetCancelsAll(t *testing.T) {
	s := NewScheduler()
	start := time.Unix(0, 0)

	fired := false
	s.After(start, time.Millisecond, func() { fired = true })
	s.After(start, 2*time.Millisecond, func() { fired = true })
	s.Reset()

	s.Advance(start.Add(time.Second))
	assert.False(t, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerCallbackMaySchedule(t *testing.T) {
	s := NewScheduler()
	start := time.Unix(0, 0)

	chained := false
	s.After(start, time.Millisecond, func() {
		s.After(start.Add(time.Millisecond), time.Millisecond, func() { chained = true })
	})

	s.Advance(start.Add(time.Millisecond))
	assert.False(t, chained)
	s.Advance(start.Add(5 * time.Millisecond))
	assert.True(t, chained)
}

func TestClockTick(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewClock(start)

	c.Tick(start.Add(16 * time.Millisecond))
	assert.Equal(t, 16*time.Millisecond, c.Delta())
	assert.Equal(t, uint64(1), c.Frame())

	// Non-monotonic input clamps to zero delta
	c.Tick(start)
	assert.Equal(t, time.Duration(0), c.Delta())
}
