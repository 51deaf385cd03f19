package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// PhaseFrequency returns the chime pitch for a phase index, a whole tone per phase
func PhaseFrequency(index int) float64 {
	if index < 0 {
		index = 0
	}
	return phaseBaseFreq * math.Pow(2, float64(index)*2/12)
}

// ChimeGenerator generates a sine tone with a short attack and exponential decay
type ChimeGenerator struct {
	sr        beep.SampleRate
	freq      float64
	amplitude float64
	pos       int
}

// NewChimeGenerator creates a chime generator
func NewChimeGenerator(sr beep.SampleRate, freq, amplitude float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:        sr,
		freq:      freq,
		amplitude: amplitude,
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 5ms attack then decay
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*18)
		sample := g.amplitude * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
