// Package parallax turns pointer positions over a container into smoothed
// tilt and translate values.
package parallax

import (
	"github.com/charmbracelet/harmonica"

	"github.com/keelpoint/sitemotion/core"
	"github.com/keelpoint/sitemotion/parameter"
	"github.com/keelpoint/sitemotion/vmath"
)

// Config tunes one engine
type Config struct {
	Strength         float64 // degrees of tilt at the container edge
	Depth            float64 // translate at the container edge
	MinViewportWidth float64 // engine is disabled below this width
	Frequency        float64 // spring angular frequency
	Damping          float64 // spring damping ratio, 1 is critically damped
	FPS              int     // tick rate the spring integrates at
}

// DefaultConfig returns the compiled-in tuning
func DefaultConfig() Config {
	return Config{
		Strength:         parameter.ParallaxStrength,
		Depth:            parameter.ParallaxDepth,
		MinViewportWidth: parameter.ParallaxMinViewportWidth,
		Frequency:        parameter.ParallaxFrequency,
		Damping:          parameter.ParallaxDamping,
		FPS:              parameter.SpringFPS,
	}
}

// Transform is the visual output applied to the container
// Rotations in degrees, translations in the host's units
type Transform struct {
	RotateX    float64
	RotateY    float64
	TranslateX float64
	TranslateY float64
}

// IsIdentity reports whether the transform leaves the container untouched
func (t Transform) IsIdentity() bool {
	return t == Transform{}
}

// PointerState is the pointer as seen by one container
// Normalized values are in [-0.5, 0.5] around the container center
type PointerState struct {
	RawX, RawY               float64
	NormalizedX, NormalizedY float64
	SmoothedX, SmoothedY     float64
}

const (
	axisX = iota
	axisY
	axisCount
)

// Engine owns the smoothing state of one pointer container
// Not safe for concurrent use, owned by the frame loop
type Engine struct {
	cfg    Config
	spring harmonica.Spring

	bounds  core.Bounds
	enabled bool
	inside  bool

	state  PointerState
	target [axisCount]float64
	pos    [axisCount]float64
	vel    [axisCount]float64
}

// NewEngine creates an engine for a container, enabled until a viewport width says otherwise
func NewEngine(cfg Config) *Engine {
	fps := cfg.FPS
	if fps <= 0 {
		fps = parameter.SpringFPS
	}
	return &Engine{
		cfg:     cfg,
		spring:  harmonica.NewSpring(harmonica.FPS(fps), cfg.Frequency, cfg.Damping),
		enabled: true,
	}
}

// SetBounds updates the container rectangle after layout
func (e *Engine) SetBounds(b core.Bounds) {
	e.bounds = b
}

// SetViewportWidth applies the capability gate
// Below the threshold the engine drops all motion state and reports identity
func (e *Engine) SetViewportWidth(width float64) {
	enabled := width >= e.cfg.MinViewportWidth
	if !enabled && e.enabled {
		e.reset()
	}
	e.enabled = enabled
}

// Enabled reports whether the viewport is wide enough for tilt
func (e *Engine) Enabled() bool {
	return e.enabled
}

// Pointer records a pointer position, returns false when the event is ignored
// Events outside the container bounds or while disabled are ignored
func (e *Engine) Pointer(x, y float64) bool {
	if !e.enabled || !e.bounds.Contains(x, y) {
		return false
	}

	nx := vmath.Clamp((x-e.bounds.Left)/e.bounds.Width-0.5, -0.5, 0.5)
	ny := vmath.Clamp((y-e.bounds.Top)/e.bounds.Height-0.5, -0.5, 0.5)

	e.inside = true
	e.state.RawX, e.state.RawY = x, y
	e.state.NormalizedX, e.state.NormalizedY = nx, ny
	e.target[axisX], e.target[axisY] = nx, ny
	return true
}

// Leave returns the target to rest, smoothing keeps animating back
func (e *Engine) Leave() {
	e.inside = false
	e.state.NormalizedX, e.state.NormalizedY = 0, 0
	e.target = [axisCount]float64{}
}

// Inside reports whether the pointer is currently over the container
func (e *Engine) Inside() bool {
	return e.inside
}

// Tick advances the spring by one frame and returns the smoothed transform
func (e *Engine) Tick() Transform {
	if !e.enabled {
		return Transform{}
	}

	for i := 0; i < axisCount; i++ {
		p, v := e.spring.Update(e.pos[i], e.vel[i], e.target[i])
		if vmath.Near(p, e.target[i], vmath.Epsilon*vmath.Epsilon) && vmath.Near(v, 0, vmath.Epsilon) {
			p, v = e.target[i], 0
		}
		e.pos[i], e.vel[i] = p, v
	}
	e.state.SmoothedX, e.state.SmoothedY = e.pos[axisX], e.pos[axisY]

	return e.Transform()
}

// Settled reports whether smoothing has converged on the target
func (e *Engine) Settled() bool {
	for i := 0; i < axisCount; i++ {
		if e.pos[i] != e.target[i] || e.vel[i] != 0 {
			return false
		}
	}
	return true
}

// Transform returns the current smoothed transform
func (e *Engine) Transform() Transform {
	if !e.enabled {
		return Transform{}
	}
	return e.transformFor(e.pos[axisX], e.pos[axisY])
}

// TargetTransform returns the transform the spring is moving toward
func (e *Engine) TargetTransform() Transform {
	if !e.enabled {
		return Transform{}
	}
	return e.transformFor(e.target[axisX], e.target[axisY])
}

// State returns a copy of the pointer state
func (e *Engine) State() PointerState {
	return e.state
}

// transformFor maps normalized offsets to tilt; signs make the surface lean toward the cursor
func (e *Engine) transformFor(nx, ny float64) Transform {
	return Transform{
		RotateX:    ny * -2 * e.cfg.Strength,
		RotateY:    nx * 2 * e.cfg.Strength,
		TranslateX: nx * 2 * e.cfg.Depth,
		TranslateY: ny * 2 * e.cfg.Depth,
	}
}

func (e *Engine) reset() {
	e.inside = false
	e.state = PointerState{}
	e.target = [axisCount]float64{}
	e.pos = [axisCount]float64{}
	e.vel = [axisCount]float64{}
}
