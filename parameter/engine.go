package parameter

import "time"

// Loop & Event Timing
const (
	// FrameUpdateInterval is the animation frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SpringFPS is the frame rate the parallax spring is tuned for, matches FrameUpdateInterval
	SpringFPS = 60

	// RotationCheckInterval is how often the host re-derives the weekly selection
	RotationCheckInterval = time.Minute
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
