package progression

import (
	"time"

	"github.com/lixenwraith/motion-fighter/core"
	"github.com/lixenwraith/motion-fighter/event"
	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/vmath"
)

// ComboAggregator groups consecutive slices that land within ComboWindow
// of each other. A chain of n >= 2 slices resolves to a bonus of
// baseSum * (mult - 1) with mult = clamp(n, min, max). The flush timer is
// cancel-and-reschedule, so a chain only resolves after a quiet period
type ComboAggregator struct {
	queue *event.Queue
	sched *core.Scheduler

	handle    core.TaskHandle
	count     int
	baseSum   int
	lastSlice time.Time
	frame     uint64
}

// NewComboAggregator creates an empty aggregator
func NewComboAggregator(queue *event.Queue, sched *core.Scheduler) *ComboAggregator {
	return &ComboAggregator{queue: queue, sched: sched}
}

// OnSlice records one positive slice. A slice arriving after the window
// has lapsed resolves the pending chain first, then starts a new one
func (c *ComboAggregator) OnSlice(baseScore int, now time.Time, frame uint64) {
	if c.count > 0 && now.Sub(c.lastSlice) > parameter.ComboWindow {
		c.flush()
	}
	c.count++
	c.baseSum += baseScore
	c.lastSlice = now
	c.frame = frame

	c.handle = c.sched.Reschedule(c.handle, now, parameter.ComboWindow, c.flush)
}

// Count returns the length of the pending chain
func (c *ComboAggregator) Count() int { return c.count }

// Flush resolves the pending chain immediately
func (c *ComboAggregator) Flush() {
	c.sched.Cancel(c.handle)
	c.handle = core.NoTask
	c.flush()
}

// Reset resolves any pending chain, then clears
func (c *ComboAggregator) Reset() {
	c.Flush()
	c.lastSlice = time.Time{}
	c.frame = 0
}

// flush resolves the chain. Single slices carry no bonus
func (c *ComboAggregator) flush() {
	if c.count >= 2 {
		mult := vmath.ClampInt(c.count, parameter.ComboMultMin, parameter.ComboMultMax)
		c.queue.Emit(event.EventComboCompleted, c.frame, &event.ComboPayload{
			Count:      c.count,
			Multiplier: mult,
			BaseSum:    c.baseSum,
			Bonus:      c.baseSum * (mult - 1),
		})
	}
	c.count = 0
	c.baseSum = 0
}
