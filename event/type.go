package event

// EventType represents the type of presentation event
type EventType int

const (
	// EventActiveRegionChanged reports a new most-visible section
	// Trigger: visibility tracker frame pass
	// Consumer: navigation highlight | Payload: *ActiveRegionPayload
	EventActiveRegionChanged EventType = iota

	// EventPhaseChanged reports a new phase index in a pinned section
	// Trigger: PhaseWatcher change detection
	// Consumer: progress bar, audio cue | Payload: *PhaseChangedPayload
	EventPhaseChanged

	// EventStepCompleted reports a one-shot step completion
	// Trigger: stepper timer goroutine
	// Consumer: stepper render state, audio cue | Payload: *StepCompletedPayload
	EventStepCompleted

	// EventRotationRefreshed reports a new weekly selection
	// Trigger: rotator on mount and on week rollover
	// Consumer: insights section | Payload: *RotationRefreshedPayload
	EventRotationRefreshed
)

// String returns human-readable event name
func (t EventType) String() string {
	switch t {
	case EventActiveRegionChanged:
		return "ActiveRegionChanged"
	case EventPhaseChanged:
		return "PhaseChanged"
	case EventStepCompleted:
		return "StepCompleted"
	case EventRotationRefreshed:
		return "RotationRefreshed"
	default:
		return "Unknown"
	}
}

// Event is one queued notification, Frame is the loop frame it was emitted on
type Event struct {
	Type    EventType
	Payload any
	Frame   int64
}
