package visibility

// MeasureFunc supplies the current region layout and viewport height
type MeasureFunc func() (regions []Region, viewportH float64)

// Tracker throttles MostVisible to at most one pass per animation frame
// Scroll and resize signals only mark the tracker dirty, Frame does the work
// Not safe for concurrent use, owned by the frame loop
type Tracker struct {
	dirty   bool
	primed  bool
	current Result
	passes  uint64
}

// NewTracker creates a tracker that measures on its first frame
func NewTracker() *Tracker {
	return &Tracker{dirty: true}
}

// Invalidate records a scroll or resize signal
func (t *Tracker) Invalidate() {
	t.dirty = true
}

// Frame runs one measurement pass if a signal arrived since the last frame
// changed reports whether the active region id differs from the previous pass
func (t *Tracker) Frame(measure MeasureFunc) (res Result, changed bool) {
	if !t.dirty || measure == nil {
		return t.current, false
	}
	t.dirty = false
	t.passes++

	regions, h := measure()
	res = MostVisible(regions, h)

	changed = !t.primed || res.ActiveID != t.current.ActiveID || res.Found != t.current.Found
	t.primed = true
	t.current = res
	return res, changed
}

// Current returns the result of the last measurement pass
func (t *Tracker) Current() Result {
	return t.current
}

// Passes returns how many measurement passes have run
func (t *Tracker) Passes() uint64 {
	return t.passes
}
