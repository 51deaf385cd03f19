// Package visibility picks the page region that occupies most of the viewport
package visibility

import (
	"math"

	"github.com/keelpoint/sitemotion/vmath"
)

// Region is one tracked page section measured in viewport coordinates
// Top and Bottom are relative to the viewport top, Height is the full section height
type Region struct {
	ID     string
	Top    float64
	Bottom float64
	Height float64
}

// Result is the most visible region of a measurement pass
// Found is false when no region has any visible height
type Result struct {
	ActiveID string
	Ratio    float64
	Found    bool
}

// Ratio returns the visible fraction of r inside a viewport of height viewportH
// Unmeasured regions and regions fully outside the viewport report 0
func Ratio(r Region, viewportH float64) float64 {
	visible := math.Min(r.Bottom, viewportH) - math.Max(r.Top, 0)
	if visible <= 0 || math.IsNaN(visible) {
		return 0
	}
	return vmath.Clamp01(visible / math.Max(r.Height, 1))
}

// MostVisible returns the region with the greatest visible ratio
// Only a strictly greater ratio displaces the current best, so ties keep the earliest region
func MostVisible(regions []Region, viewportH float64) Result {
	var best Result
	for _, r := range regions {
		ratio := Ratio(r, viewportH)
		if ratio > best.Ratio {
			best = Result{ActiveID: r.ID, Ratio: ratio, Found: true}
		}
	}
	return best
}
