package clock

import "time"

// Timer is a cancelable pending callback
// Stop returns false if the timer already fired or was stopped
type Timer interface {
	Stop() bool
}

// TimeProvider supplies wall-clock time and one-shot timers
type TimeProvider interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// RealTimeProvider provides the real system time with monotonic clock readings
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new monotonic time provider
func NewRealTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// AfterFunc runs f on its own goroutine once d elapses
func (p *RealTimeProvider) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
