// Package scroll maps the scroll progress of a pinned region onto discrete
// animation phases.
//
// A pinned region stays on screen while the page scrolls through a longer
// distance; that distance is normalized to a progress value in [0, 1] and
// split evenly into N phases. Within a phase the local progress drives an
// entry window, a hold window and, on all but the final phase, an exit window.
//
// Map is pure. The same progress always yields the same Phase regardless of
// scroll direction or of any previous frame, so scrolling back through a
// position replays the exact same styles.
package scroll

import (
	"math"

	"github.com/keelpoint/sitemotion/parameter"
	"github.com/keelpoint/sitemotion/vmath"
)

// Window identifies the sub-window of a phase that local progress falls into
type Window uint8

const (
	WindowEntry Window = iota
	WindowHold
	WindowExit
)

// String returns human-readable window name
func (w Window) String() string {
	switch w {
	case WindowEntry:
		return "entry"
	case WindowHold:
		return "hold"
	case WindowExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Phase is the derived style state for one progress value
// TranslateY is a percentage of the element height, Opacity is in [0, 1]
type Phase struct {
	Index         int
	LocalProgress float64
	Window        Window
	Opacity       float64
	TranslateY    float64
}

// BarWidth returns the progress bar fill for this phase, (Index+1)/phaseCount
func (p Phase) BarWidth(phaseCount int) float64 {
	if phaseCount < 1 {
		phaseCount = 1
	}
	return float64(p.Index+1) / float64(phaseCount)
}

// Map derives the phase and its style parameters from global progress
// progress is clamped to [0, 1], phaseCount below 1 is treated as 1
func Map(progress float64, phaseCount int) Phase {
	if phaseCount < 1 {
		phaseCount = 1
	}
	progress = vmath.Clamp01(progress)

	scaled := progress * float64(phaseCount)
	index := vmath.ClampInt(int(math.Floor(scaled)), 0, phaseCount-1)
	local := vmath.Clamp01(scaled - float64(index))

	p := Phase{Index: index, LocalProgress: local}
	last := index == phaseCount-1

	switch {
	case local <= parameter.PhaseEntryEnd:
		eased := vmath.EaseOutCubic(local / parameter.PhaseEntryEnd)
		p.Window = WindowEntry
		p.Opacity = eased
		p.TranslateY = vmath.Lerp(parameter.PhaseEntryOffset, 0, eased)

	case local < parameter.PhaseExitStart || last:
		p.Window = WindowHold
		p.Opacity = 1
		p.TranslateY = 0

	default:
		t := (local - parameter.PhaseExitStart) / (1 - parameter.PhaseExitStart)
		t = vmath.Clamp01(t)
		p.Window = WindowExit
		p.Opacity = vmath.Lerp(1, parameter.PhaseExitOpacity, t)
		p.TranslateY = vmath.Lerp(0, parameter.PhaseExitOffset, t)
	}

	return p
}

// PinProgress normalizes the scroll position inside a pinned region
// scrollTop and pinTop are document offsets, the pinned content stays fixed
// while the page scrolls through pinHeight - viewportH
func PinProgress(scrollTop, pinTop, pinHeight, viewportH float64) float64 {
	distance := pinHeight - viewportH
	if distance <= 0 {
		if scrollTop >= pinTop {
			return 1
		}
		return 0
	}
	return vmath.Clamp01((scrollTop - pinTop) / distance)
}
