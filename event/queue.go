package event

import (
	"sync/atomic"

	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
)

// Queue is a lock-free MPSC ring buffer of outbound events
//   - Push: CAS on tail, safe for multiple producers
//   - Consume: single consumer (the frame driver)
//   - A per-slot published flag keeps the consumer from reading half-written slots
//
// When full, the oldest unread events are overwritten
type Queue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Next slot to read
	tail      atomic.Uint64 // Next slot to write
	dropped   atomic.Uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, O(1)
func (q *Queue) Push(ev GameEvent) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		q.events[idx] = ev
		q.published[idx].Store(true) // After the write

		head := q.head.Load()
		if next-head > parameter.EventQueueSize {
			if q.head.CompareAndSwap(head, next-parameter.EventQueueSize) {
				q.dropped.Add(1)
			}
		}
		return
	}
}

// Consume returns pending events in FIFO order, nil when empty
func (q *Queue) Consume() []GameEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		n := tail - head
		if n > parameter.EventQueueSize {
			n = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, n)
		for i := uint64(0); i < n; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break // Producer still writing
			}
			out = append(out, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns the approximate pending count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	if n := tail - head; n < parameter.EventQueueSize {
		return int(n)
	}
	return parameter.EventQueueSize
}

// Dropped returns how many times the queue overwrote unread events
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}

// Reset discards pending events; only the consumer may call it
func (q *Queue) Reset() {
	for i := range q.published {
		q.published[i].Store(false)
	}
	q.head.Store(q.tail.Load())
}
