package clock

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Timers fire synchronously inside Advance, in deadline order
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
	seq         uint64
}

type mockTimer struct {
	provider *MockTimeProvider
	deadline time.Time
	seq      uint64
	fn       func()
	done     bool
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// SetTime sets the current time without firing timers
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// AfterFunc registers f to run when mocked time passes now + d
func (m *MockTimeProvider) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &mockTimer{
		provider: m,
		deadline: m.currentTime.Add(d),
		seq:      m.seq,
		fn:       f,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves time forward by d, firing due timers in deadline order
// Callbacks run without the lock held so they may schedule or stop timers
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.currentTime.Add(d)

	for {
		next := m.nextDueLocked(target)
		if next == nil {
			break
		}
		next.done = true
		m.currentTime = next.deadline
		m.mu.Unlock()

		next.fn()

		m.mu.Lock()
	}

	m.currentTime = target
	m.compactLocked()
	m.mu.Unlock()
}

// Pending returns the number of timers that have neither fired nor been stopped
func (m *MockTimeProvider) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.timers {
		if !t.done {
			n++
		}
	}
	return n
}

// Scheduled returns the total number of timers ever registered
func (m *MockTimeProvider) Scheduled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int(m.seq)
}

func (m *MockTimeProvider) nextDueLocked(limit time.Time) *mockTimer {
	var next *mockTimer
	for _, t := range m.timers {
		if t.done || t.deadline.After(limit) {
			continue
		}
		if next == nil || t.deadline.Before(next.deadline) ||
			(t.deadline.Equal(next.deadline) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *MockTimeProvider) compactLocked() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(m.timers); i++ {
		m.timers[i] = nil
	}
	m.timers = live
}

// Stop cancels the timer if it has not fired
func (t *mockTimer) Stop() bool {
	t.provider.mu.Lock()
	defer t.provider.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	return true
}
