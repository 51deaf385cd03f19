package showcase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keelpoint/sitemotion/clock"
	"github.com/keelpoint/sitemotion/config"
	"github.com/keelpoint/sitemotion/content"
	"github.com/keelpoint/sitemotion/event"
	"github.com/keelpoint/sitemotion/parameter"
	"github.com/keelpoint/sitemotion/scroll"
)

type recordingCues struct {
	phases []int
	steps  []int
}

func (c *recordingCues) PlayPhase(index int) { c.phases = append(c.phases, index) }
func (c *recordingCues) PlayStep(step int)   { c.steps = append(c.steps, step) }

func newTestPresenter(t *testing.T) (*Presenter, *clock.MockTimeProvider, *recordingCues) {
	t.Helper()

	site, err := content.Default()
	require.NoError(t, err)

	// Tuesday of week 19 in 2025, seed 202519
	tp := clock.NewMockTimeProvider(time.Date(2025, time.May, 6, 12, 0, 0, 0, time.Local))
	cues := &recordingCues{}

	p := NewPresenter(config.Default(), site, tp, WithCues(cues))
	p.Resize(100, 30)
	t.Cleanup(p.Close)
	return p, tp, cues
}

func TestPresenterInitialFrame(t *testing.T) {
	p, _, cues := newTestPresenter(t)

	v := p.Frame()
	assert.Equal(t, int64(1), v.Frame)
	assert.Equal(t, SectionHero, v.Active)
	assert.Equal(t, 0, v.Phase.Index)
	assert.Equal(t, 0.25, v.PhaseBar)
	assert.Equal(t, []int{0}, cues.phases)
	assert.True(t, v.Tilt.IsIdentity())
	assert.Len(t, v.StepsDone, len(p.Site().Process))
	assert.Zero(t, v.StepProgress)
	assert.Equal(t, len(p.Site().Services), v.PhaseCount)
	assert.True(t, v.TiltEnabled)
	assert.True(t, v.TiltSettled)
	assert.NotEmpty(t, v.RefreshIn)
}

func TestPresenterFeaturedMatchesWeeklySelection(t *testing.T) {
	p, _, _ := newTestPresenter(t)

	v := p.Frame()
	want := config.Default().Selector().SelectSeed(p.Site().RotationPool(), 202519)

	require.Len(t, v.Featured, parameter.RotationCount)
	for i, in := range v.Featured {
		assert.Equal(t, want[i], in.ID)
	}
}

func TestPresenterRotationRefreshesOnNewWeek(t *testing.T) {
	p, tp, _ := newTestPresenter(t)

	first := p.Frame().Featured
	require.NotEmpty(t, first)

	// Within the same week the selection is stable
	tp.SetTime(time.Date(2025, time.May, 9, 18, 0, 0, 0, time.Local))
	assert.Equal(t, first, p.Frame().Featured)

	tp.SetTime(time.Date(2025, time.May, 11, 12, 0, 0, 0, time.Local))
	next := p.Frame().Featured
	want := config.Default().Selector().SelectSeed(p.Site().RotationPool(), 202520)
	require.Len(t, next, len(want))
	for i, in := range next {
		assert.Equal(t, want[i], in.ID)
	}
}

func TestPresenterPinnedPhases(t *testing.T) {
	p, _, cues := newTestPresenter(t)
	p.Frame()

	services, _ := p.Page().Section(SectionServices)
	distance := services.Height - p.Page().Height

	// 55% through four phases lands early in phase 2
	p.ScrollTo(services.Top + distance*55/100)
	v := p.Frame()

	assert.Equal(t, SectionServices, v.Active)
	assert.Equal(t, 2, v.Phase.Index)
	assert.Equal(t, scroll.WindowEntry, v.Phase.Window)
	assert.Equal(t, 0.75, v.PhaseBar)
	assert.Equal(t, []int{0, 2}, cues.phases)

	// Same phase, no new cue
	p.ScrollBy(1)
	p.Frame()
	assert.Equal(t, []int{0, 2}, cues.phases)

	// Scrolling back replays the same styles
	p.ScrollTo(services.Top + distance*55/100)
	again := p.Frame()
	assert.Equal(t, v.Phase, again.Phase)
}

func TestPresenterStepsCompleteAfterEntering(t *testing.T) {
	p, tp, cues := newTestPresenter(t)
	p.Frame()

	// Timers are not scheduled before the section is seen
	tp.Advance(10 * time.Second)
	v := p.Frame()
	assert.NotContains(t, v.StepsDone, true)

	require.True(t, p.ScrollToSection(SectionProcess))
	v = p.Frame()
	assert.Equal(t, SectionProcess, v.Active)

	tp.Advance(parameter.StepBaseDelay)
	v = p.Frame()
	assert.Equal(t, []bool{true, false, false, false}, v.StepsDone)
	assert.Equal(t, []int{0}, cues.steps)

	// Leaving and re-entering does not reschedule pending steps
	p.ScrollTo(0)
	p.Frame()
	p.ScrollToSection(SectionProcess)
	p.Frame()

	tp.Advance(3 * parameter.StepInterval)
	v = p.Frame()
	assert.Equal(t, []bool{true, true, true, true}, v.StepsDone)
	assert.Equal(t, 1.0, v.StepProgress)
	assert.Equal(t, []int{0, 1, 2, 3}, cues.steps)
}

func TestPresenterIgnoresStepEventsTheSequenceDidNotFire(t *testing.T) {
	p, _, cues := newTestPresenter(t)
	p.Frame()

	event.EmitStepCompleted(p.queue, SectionProcess, 2, 0)
	event.EmitStepCompleted(p.queue, SectionProcess, 9, 0)
	v := p.Frame()

	assert.NotContains(t, v.StepsDone, true)
	assert.Zero(t, v.StepProgress)
	assert.Empty(t, cues.steps)
}

func TestPresenterCloseCancelsSteps(t *testing.T) {
	p, tp, _ := newTestPresenter(t)

	p.ScrollToSection(SectionProcess)
	p.Frame()
	p.Close()

	tp.Advance(time.Minute)
	v := p.Frame()
	assert.NotContains(t, v.StepsDone, true)
	assert.Zero(t, tp.Pending())

	// Second close is a no-op
	p.Close()
	assert.True(t, p.steps.Closed())
}

func TestPresenterHeroTilt(t *testing.T) {
	p, _, _ := newTestPresenter(t)

	// Card spans columns 20..80 and rows 11..20 at scroll 0
	p.Pointer(65, 11)
	for i := 0; i < 300; i++ {
		p.Frame()
	}
	v := p.View()
	assert.InDelta(t, 8.0, v.Tilt.RotateX, 1e-3)
	assert.InDelta(t, 4.0, v.Tilt.RotateY, 1e-3)

	// Moving off the card eases back to rest
	p.Pointer(2, 2)
	for i := 0; i < 300; i++ {
		p.Frame()
	}
	assert.True(t, p.View().Tilt.IsIdentity())
}

func TestPresenterNarrowViewportDisablesTilt(t *testing.T) {
	p, _, _ := newTestPresenter(t)

	p.Pointer(65, 11)
	p.Frame()
	assert.False(t, p.View().Tilt.IsIdentity())

	p.Resize(60, 30)
	p.Pointer(30, 15)
	v := p.Frame()
	assert.True(t, v.Tilt.IsIdentity())
}

func TestPresenterScrollClamps(t *testing.T) {
	p, _, _ := newTestPresenter(t)

	p.ScrollBy(-5)
	assert.Equal(t, 0, p.ScrollY())

	p.ScrollTo(1 << 20)
	assert.Equal(t, p.Page().MaxScroll(), p.ScrollY())
	assert.Equal(t, SectionContact, p.Frame().Active)

	assert.False(t, p.ScrollToSection("missing"))
}
