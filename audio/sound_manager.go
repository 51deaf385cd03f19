package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// phaseBaseFreq is the chime pitch of phase 0, each later phase steps up a whole tone
	phaseBaseFreq = 440.0
	stepFreq      = 660.0
)

// CuePlayer plays short tones for presentation events
// All methods are no-ops until Initialize succeeds
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCuePlayer creates a new cue player
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}

// PlayPhase plays a chime whose pitch rises with the phase index
func (p *CuePlayer) PlayPhase(index int) {
	p.play(beep.Take(sampleRate.N(180*time.Millisecond), NewChimeGenerator(sampleRate, PhaseFrequency(index), 0.18)))
}

// PlayStep plays a short tick for a completed step
func (p *CuePlayer) PlayStep(step int) {
	p.play(beep.Take(sampleRate.N(90*time.Millisecond), NewChimeGenerator(sampleRate, stepFreq+float64(step)*20, 0.12)))
}

func (p *CuePlayer) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
