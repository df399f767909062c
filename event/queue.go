package event

import "github.com/lixenwraith/motion-fighter/parameter"

// Queue is a bounded FIFO ring buffer for game events.
// The frame pipeline is single-threaded: producers push during the update
// phases, the single consumer drains during dispatch. When full, the oldest
// unread events are overwritten rather than growing unbounded.
type Queue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, overwriting the oldest unread event when full
func (q *Queue) Push(ev GameEvent) {
	q.events[q.tail&parameter.EventBufferMask] = ev
	q.tail++

	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
	}
}

// Emit is shorthand for Push with a constructed event
func (q *Queue) Emit(t EventType, frame uint64, payload any) {
	q.Push(GameEvent{Type: t, Frame: frame, Payload: payload})
}

// Consume returns all pending events in FIFO order and advances the head
func (q *Queue) Consume() []GameEvent {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}

	out := make([]GameEvent, 0, n)
	for i := q.head; i != q.tail; i++ {
		out = append(out, q.events[i&parameter.EventBufferMask])
	}
	q.head = q.tail
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Drain discards all pending events
func (q *Queue) Drain() {
	q.head = q.tail
}
