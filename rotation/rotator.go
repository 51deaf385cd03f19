package rotation

import "time"

// Rotator caches the selection for a mounted pool until its week ends
type Rotator struct {
	selector *Selector
	pool     []Item
	current  Selection
	primed   bool
}

// NewRotator binds a selector to a pool, the pool slice must not be modified afterwards
func NewRotator(selector *Selector, pool []Item) *Rotator {
	return &Rotator{selector: selector, pool: pool}
}

// Current returns the selection valid at now
// refreshed is true on the first call and whenever the week rolled over
func (r *Rotator) Current(now time.Time) (sel Selection, refreshed bool) {
	if r.primed && !r.current.Expired(now) {
		return r.current, false
	}
	r.current = r.selector.Select(r.pool, now)
	r.primed = true
	return r.current, true
}
