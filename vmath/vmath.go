package vmath

import "math"

// Epsilon is the tolerance used for convergence checks on smoothed values
const Epsilon = 1e-3

// --- Scalar helpers ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1], NaN maps to 0
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, 0, 1)
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Frac returns the fractional part of x in [0, 1), floor based so negatives wrap upward
func Frac(x float64) float64 {
	return x - math.Floor(x)
}

// Near reports whether a and b differ by less than eps
func Near(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// --- Easing ---

// EaseOutCubic decelerates toward t = 1, input clamped to [0, 1]
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// --- Randomness ---

// FastRand is a xorshift64 generator
// Deterministic for a given seed, not suitable for anything security related
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
