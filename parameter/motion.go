package parameter

import "time"

// Scroll Phase Windows
// Fractions of a phase's local progress
const (
	// PhaseEntryEnd closes the entry window, [0, PhaseEntryEnd] animates in
	PhaseEntryEnd = 0.5

	// PhaseExitStart opens the exit window, [PhaseExitStart, 1) animates out on non-final phases
	PhaseExitStart = 0.9

	// PhaseEntryOffset is the entry translateY start, percent of element height
	PhaseEntryOffset = 100.0

	// PhaseExitOffset is the exit translateY end, percent of element height
	PhaseExitOffset = -80.0

	// PhaseExitOpacity is the opacity reached at the end of the exit window
	PhaseExitOpacity = 0.3
)

// Pointer Parallax
const (
	// ParallaxStrength is the maximum tilt in degrees at the container edge
	ParallaxStrength = 8.0

	// ParallaxDepth is the maximum translate offset at the container edge, in cells
	ParallaxDepth = 3.0

	// ParallaxMinViewportWidth disables tilt on narrow viewports, in columns
	ParallaxMinViewportWidth = 80.0

	// ParallaxFrequency is the spring angular frequency
	ParallaxFrequency = 6.0

	// ParallaxDamping is the spring damping ratio, 1.0 is critically damped
	ParallaxDamping = 1.0
)

// Stepper
const (
	// StepBaseDelay is the delay before the first step completes after the section is seen
	StepBaseDelay = 400 * time.Millisecond

	// StepInterval is the stagger between consecutive step completions
	StepInterval = 600 * time.Millisecond

	// StepEnterRatio is the visibility ratio a stepper section must reach to count as entered
	StepEnterRatio = 0.35
)

// Weekly Rotation
const (
	// RotationCount is the number of featured items shown per week
	RotationCount = 3
)
