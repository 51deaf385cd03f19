package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keelpoint/sitemotion/parameter"
)

func drainAll(q *EventQueue) []Event {
	var out []Event
	q.Drain(func(ev Event) {
		out = append(out, ev)
	})
	return out
}

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	assert.Nil(t, drainAll(q))

	EmitPhaseChanged(q, "services", 1, 0.5, 10)
	EmitStepCompleted(q, "process", 0, 11)
	assert.Equal(t, 2, q.Len())

	events := drainAll(q)
	require.Len(t, events, 2)
	assert.Equal(t, EventPhaseChanged, events[0].Type)
	assert.Equal(t, &PhaseChangedPayload{Section: "services", Index: 1, BarWidth: 0.5}, events[0].Payload)
	assert.Equal(t, int64(11), events[1].Frame)
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, drainAll(q))
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventStepCompleted, Frame: int64(i)})
	}

	assert.Equal(t, parameter.EventQueueSize, q.Len())
	events := drainAll(q)
	require.Len(t, events, parameter.EventQueueSize)
	assert.Equal(t, int64(10), events[0].Frame)
	assert.Equal(t, int64(total-1), events[len(events)-1].Frame)
	assert.Equal(t, uint64(10), q.Dropped())
}

// A producer that claimed a slot but has not written it must not expose the
// event an earlier lap left there
func TestQueueSkippedSlotNotDeliveredForPendingWrite(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < parameter.EventQueueSize; i++ {
		q.Push(Event{Type: EventStepCompleted, Frame: int64(i)})
	}

	// Claims position EventQueueSize, which reuses the slot of frame 0
	pending := q.claim()

	// The next push overflows and moves the reader past frames 0 and 1
	last := int64(parameter.EventQueueSize + 1)
	q.Push(Event{Type: EventStepCompleted, Frame: last})
	assert.Equal(t, uint64(2), q.Dropped())

	events := drainAll(q)
	require.Len(t, events, parameter.EventQueueSize-2)
	assert.Equal(t, int64(2), events[0].Frame)
	assert.Equal(t, int64(parameter.EventQueueSize-1), events[len(events)-1].Frame)

	q.publish(pending, Event{Type: EventPhaseChanged, Frame: int64(parameter.EventQueueSize)})
	events = drainAll(q)
	require.Len(t, events, 2)
	assert.Equal(t, EventPhaseChanged, events[0].Type)
	assert.Equal(t, int64(parameter.EventQueueSize), events[0].Frame)
	assert.Equal(t, last, events[1].Frame)
	assert.Zero(t, q.Len())
}

func TestQueueLapsDeliverOnlyCurrentEvents(t *testing.T) {
	q := NewEventQueue()
	const laps = 3
	total := laps*parameter.EventQueueSize + 7
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventStepCompleted, Frame: int64(i)})
	}

	events := drainAll(q)
	require.Len(t, events, parameter.EventQueueSize)
	for i, ev := range events {
		assert.Equal(t, int64(total-parameter.EventQueueSize+i), ev.Frame)
	}
	assert.Equal(t, uint64(total-parameter.EventQueueSize), q.Dropped())
	assert.Empty(t, drainAll(q))
}

func TestQueueDrainOrder(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(Event{Type: EventPhaseChanged, Frame: int64(i)})
	}

	var frames []int64
	n := q.Drain(func(ev Event) { frames = append(frames, ev.Frame) })
	assert.Equal(t, 5, n)
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, frames)
	assert.Zero(t, q.Drain(func(Event) { t.Fatal("queue should be empty") }))
	assert.Zero(t, q.Dropped())
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()

	const producers = 4
	const perProducer = 50
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				EmitStepCompleted(q, "process", p, int64(i))
			}
		}(p)
	}
	wg.Wait()

	events := drainAll(q)
	assert.Len(t, events, producers*perProducer)
}

func TestRotationPayloadCopiesIDs(t *testing.T) {
	q := NewEventQueue()
	ids := []string{"a", "b"}
	EmitRotationRefreshed(q, 202519, ids, 0)
	ids[0] = "mutated"

	events := drainAll(q)
	require.Len(t, events, 1)
	assert.Equal(t, []string{"a", "b"}, events[0].Payload.(*RotationRefreshedPayload).IDs)
	assert.Equal(t, "RotationRefreshed", events[0].Type.String())
}
