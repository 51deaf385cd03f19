package event

// EmitStepCompleted queues a step completion, safe from timer goroutines
func EmitStepCompleted(q *EventQueue, section string, step int, frame int64) {
	q.Push(Event{
		Type:    EventStepCompleted,
		Payload: &StepCompletedPayload{Section: section, Step: step},
		Frame:   frame,
	})
}

// EmitPhaseChanged queues a phase index change
func EmitPhaseChanged(q *EventQueue, section string, index int, barWidth float64, frame int64) {
	q.Push(Event{
		Type:    EventPhaseChanged,
		Payload: &PhaseChangedPayload{Section: section, Index: index, BarWidth: barWidth},
		Frame:   frame,
	})
}

// EmitActiveRegion queues a navigation highlight change
func EmitActiveRegion(q *EventQueue, id string, ratio float64, found bool, frame int64) {
	q.Push(Event{
		Type:    EventActiveRegionChanged,
		Payload: &ActiveRegionPayload{ID: id, Ratio: ratio, Found: found},
		Frame:   frame,
	})
}

// EmitRotationRefreshed queues a new weekly selection
func EmitRotationRefreshed(q *EventQueue, seed int, ids []string, frame int64) {
	q.Push(Event{
		Type:    EventRotationRefreshed,
		Payload: &RotationRefreshedPayload{Seed: seed, IDs: append([]string(nil), ids...)},
		Frame:   frame,
	})
}
