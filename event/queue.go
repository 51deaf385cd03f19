package event

import (
	"sync/atomic"

	"github.com/keelpoint/sitemotion/parameter"
)

type slot struct {
	ev  Event
	seq atomic.Uint64 // claimed position + 1 once ev is written, 0 while a producer writes
}

// EventQueue is a fixed ring that timer goroutines and the frame loop publish
// into and the frame loop drains once per frame
//
// Push is safe from any goroutine. Drain belongs to the single consumer.
// When the ring is full the oldest unread event is overwritten and counted
// in Dropped. A slot is only delivered while its sequence matches the read
// position, so an event left behind by an earlier lap is never handed out
// in place of one still being written.
type EventQueue struct {
	ring    [parameter.EventQueueSize]slot
	read    atomic.Uint64
	write   atomic.Uint64
	dropped atomic.Uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push publishes ev
func (q *EventQueue) Push(ev Event) {
	q.publish(q.claim(), ev)
}

func (q *EventQueue) claim() uint64 {
	return q.write.Add(1) - 1
}

// publish writes ev into the slot claimed at pos
// Producers must not lap each other by a full ring while writing
func (q *EventQueue) publish(pos uint64, ev Event) {
	s := &q.ring[pos&parameter.EventBufferMask]
	s.seq.Store(0)
	s.ev = ev
	s.seq.Store(pos + 1)

	// Full ring: move the reader past the slot just overwritten
	for {
		r := q.read.Load()
		if pos+1-r <= parameter.EventQueueSize {
			return
		}
		head := pos + 1 - parameter.EventQueueSize
		if q.read.CompareAndSwap(r, head) {
			q.dropped.Add(head - r)
			return
		}
	}
}

// Drain hands every published event to fn in publish order and returns how many it delivered
// It stops at the first slot a producer is still writing, that event is delivered next frame
func (q *EventQueue) Drain(fn func(Event)) int {
	n := 0
	for {
		r := q.read.Load()
		if r == q.write.Load() {
			return n
		}
		s := &q.ring[r&parameter.EventBufferMask]
		if s.seq.Load() != r+1 {
			return n
		}
		ev := s.ev
		if s.seq.Load() != r+1 {
			// Overwritten while copying, the lapping producer moves the head
			return n
		}
		if !q.read.CompareAndSwap(r, r+1) {
			// A producer wrapped the ring under us, reread from the new head
			continue
		}
		fn(ev)
		n++
	}
}

// Len returns the number of unread events
func (q *EventQueue) Len() int {
	w, r := q.write.Load(), q.read.Load()
	if w <= r {
		return 0
	}
	return int(min(w-r, parameter.EventQueueSize))
}

// Dropped returns how many events were overwritten before being read
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
