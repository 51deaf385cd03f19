// Package stepper completes the steps of a progressive section one at a time
// after the section first becomes visible.
//
// Each step is scheduled at most once per Sequence. Re-entering visibility
// only schedules steps that are neither pending nor complete, and Close
// cancels every pending timer so no completion is reported afterwards.
package stepper

import (
	"sort"
	"sync"
	"time"

	"github.com/keelpoint/sitemotion/clock"
)

// DelayFunc returns the delay between visibility-enter and completion of step
type DelayFunc func(step int) time.Duration

// Staggered completes step s after base + s*interval
func Staggered(base, interval time.Duration) DelayFunc {
	return func(step int) time.Duration {
		return base + time.Duration(step)*interval
	}
}

// Option configures a Sequence
type Option func(*Sequence)

// WithOnComplete registers the step-completed notification
// The callback runs on the timer goroutine and must not call Close
func WithOnComplete(fn func(step int)) Option {
	return func(s *Sequence) {
		s.onComplete = fn
	}
}

// Sequence is one instance of a progressive section
type Sequence struct {
	// notifyMu serializes completions against Close so no notification
	// is delivered once Close has returned
	notifyMu sync.Mutex

	mu         sync.Mutex
	steps      int
	delay      DelayFunc
	clock      clock.TimeProvider
	onComplete func(step int)

	pending   map[int]clock.Timer
	completed map[int]struct{}
	entries   int
	closed    bool
}

// New creates a sequence of steps using tp for timers
func New(steps int, delay DelayFunc, tp clock.TimeProvider, opts ...Option) *Sequence {
	if steps < 0 {
		steps = 0
	}
	if delay == nil {
		delay = func(int) time.Duration { return 0 }
	}
	if tp == nil {
		tp = clock.NewRealTimeProvider()
	}

	s := &Sequence{
		steps:     steps,
		delay:     delay,
		clock:     tp,
		pending:   make(map[int]clock.Timer, steps),
		completed: make(map[int]struct{}, steps),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enter handles a visibility-enter signal and returns how many timers it scheduled
func (s *Sequence) Enter() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0
	}
	s.entries++

	scheduled := 0
	for step := 0; step < s.steps; step++ {
		if _, ok := s.completed[step]; ok {
			continue
		}
		if _, ok := s.pending[step]; ok {
			continue
		}
		step := step
		s.pending[step] = s.clock.AfterFunc(s.delay(step), func() { s.fire(step) })
		scheduled++
	}
	return scheduled
}

func (s *Sequence) fire(step int) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if _, ok := s.pending[step]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.pending, step)
	s.completed[step] = struct{}{}
	notify := s.onComplete
	s.mu.Unlock()

	if notify != nil {
		notify(step)
	}
}

// Close cancels all pending timers, waiting out a completion already in flight
func (s *Sequence) Close() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for step, t := range s.pending {
		t.Stop()
		delete(s.pending, step)
	}
}

// Steps returns the number of steps
func (s *Sequence) Steps() int {
	return s.steps
}

// IsComplete reports whether step has completed
func (s *Sequence) IsComplete(step int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.completed[step]
	return ok
}

// Completed returns the completed steps in ascending order
func (s *Sequence) Completed() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, 0, len(s.completed))
	for step := range s.completed {
		out = append(out, step)
	}
	sort.Ints(out)
	return out
}

// Progress returns completed/steps in [0, 1], a sequence without steps is complete
func (s *Sequence) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.steps == 0 {
		return 1
	}
	return float64(len(s.completed)) / float64(s.steps)
}

// Pending returns the number of scheduled steps that have not completed
func (s *Sequence) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Entered reports whether the sequence has seen a visibility-enter signal
func (s *Sequence) Entered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries > 0
}

// Closed reports whether the sequence has been torn down
func (s *Sequence) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
