package scroll

// PhaseWatcher reports phase index changes for one pinned region
// The only history it keeps is the previous index, used for change detection;
// the returned Phase is always Map(progress, n)
type PhaseWatcher struct {
	phaseCount int
	lastIndex  int
	primed     bool
}

// NewPhaseWatcher creates a watcher for a region with phaseCount phases
func NewPhaseWatcher(phaseCount int) *PhaseWatcher {
	if phaseCount < 1 {
		phaseCount = 1
	}
	return &PhaseWatcher{phaseCount: phaseCount}
}

// Observe maps progress and reports whether the index changed since the previous call
// The first observation always reports a change so consumers can initialize
func (w *PhaseWatcher) Observe(progress float64) (Phase, bool) {
	p := Map(progress, w.phaseCount)
	changed := !w.primed || p.Index != w.lastIndex
	w.primed = true
	w.lastIndex = p.Index
	return p, changed
}

// BarWidth returns the progress bar fill for the last observed index
func (w *PhaseWatcher) BarWidth() float64 {
	if !w.primed {
		return 0
	}
	return float64(w.lastIndex+1) / float64(w.phaseCount)
}

// PhaseCount returns the number of phases
func (w *PhaseWatcher) PhaseCount() int {
	return w.phaseCount
}
