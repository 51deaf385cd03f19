package event

// ActiveRegionPayload carries the new navigation highlight
type ActiveRegionPayload struct {
	ID    string
	Ratio float64
	Found bool
}

// PhaseChangedPayload carries the new phase of a pinned section
type PhaseChangedPayload struct {
	Section  string
	Index    int
	BarWidth float64
}

// StepCompletedPayload identifies a completed step
type StepCompletedPayload struct {
	Section string
	Step    int
}

// RotationRefreshedPayload carries the week's featured ids
type RotationRefreshedPayload struct {
	Seed int
	IDs  []string
}
