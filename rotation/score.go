package rotation

import (
	"math"

	"github.com/keelpoint/sitemotion/vmath"
)

// Scorer assigns a sort key to a pool position for a given seed
type Scorer interface {
	Score(seed, index int) float64
}

// ScorerFunc adapts a plain function to Scorer
type ScorerFunc func(seed, index int) float64

func (f ScorerFunc) Score(seed, index int) float64 { return f(seed, index) }

// SineScore returns frac(sin(seed + index) * 10000)
//
// This is a weak, non-cryptographic hash kept bit-for-bit so the featured set
// for any past or future week stays the same across deployments. Anything
// that does not need that continuity should use XorShiftScorer.
func SineScore(seed, index int) float64 {
	return vmath.Frac(math.Sin(float64(seed+index)) * 10000)
}

// SineScorer is the default scorer
var SineScorer Scorer = ScorerFunc(SineScore)

// XorShiftScorer derives scores from a xorshift stream seeded per (seed, index)
// Better distributed than SineScorer but selects different sets
var XorShiftScorer Scorer = ScorerFunc(func(seed, index int) float64 {
	r := vmath.NewFastRand(uint64(seed)*0x9E3779B97F4A7C15 ^ uint64(index+1))
	r.Next()
	return r.Float64()
})
