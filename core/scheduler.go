package core

import (
	"sort"
	"time"
)

// TaskHandle is a cancellation token for one scheduled task.
// The zero handle is never issued and cancels nothing.
type TaskHandle uint64

// NoTask is the zero handle
const NoTask TaskHandle = 0

type task struct {
	id  TaskHandle
	due time.Time
	fn  func()
}

// Scheduler runs deferred callbacks on the frame clock.
// It is the single primitive behind recycle-after-delay and the combo and
// activation debounces. All scheduling is cancel-and-reschedule: callers hold
// a TaskHandle and never stack duplicate timers. Reset cancels everything so
// no stale callback can mutate post-reset state.
//
// Single-threaded: Advance is called once per frame by the pipeline owner.
type Scheduler struct {
	nextID TaskHandle
	tasks  map[TaskHandle]task
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[TaskHandle]task)}
}

// After schedules fn to run once d has elapsed past now.
// A non-positive delay fires on the next Advance
func (s *Scheduler) After(now time.Time, d time.Duration, fn func()) TaskHandle {
	s.nextID++
	h := s.nextID
	s.tasks[h] = task{id: h, due: now.Add(d), fn: fn}
	return h
}

// Cancel drops a pending task. Unknown or fired handles are ignored
func (s *Scheduler) Cancel(h TaskHandle) {
	delete(s.tasks, h)
}

// Reschedule cancels prev (if pending) and schedules fn fresh, returning
// the new handle. This is the debounce primitive: timers never stack
func (s *Scheduler) Reschedule(prev TaskHandle, now time.Time, d time.Duration, fn func()) TaskHandle {
	s.Cancel(prev)
	return s.After(now, d, fn)
}

// Advance runs every task due at or before now, in (due, id) order.
// Tasks are removed before their callback runs, so a callback may freely
// schedule follow-up work
func (s *Scheduler) Advance(now time.Time) {
	if len(s.tasks) == 0 {
		return
	}

	due := make([]task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.due.After(now) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})

	for _, t := range due {
		delete(s.tasks, t.id)
	}
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of scheduled tasks
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Reset cancels all pending tasks
func (s *Scheduler) Reset() {
	clear(s.tasks)
}
