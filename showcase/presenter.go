package showcase

import (
	"log/slog"
	"time"

	"github.com/keelpoint/sitemotion/clock"
	"github.com/keelpoint/sitemotion/config"
	"github.com/keelpoint/sitemotion/content"
	"github.com/keelpoint/sitemotion/event"
	"github.com/keelpoint/sitemotion/logging"
	"github.com/keelpoint/sitemotion/parallax"
	"github.com/keelpoint/sitemotion/parameter"
	"github.com/keelpoint/sitemotion/rotation"
	"github.com/keelpoint/sitemotion/scroll"
	"github.com/keelpoint/sitemotion/stepper"
	"github.com/keelpoint/sitemotion/visibility"
)

// Cues receives audible feedback for presentation changes
type Cues interface {
	PlayPhase(index int)
	PlayStep(step int)
}

type nopCues struct{}

func (nopCues) PlayPhase(int) {}
func (nopCues) PlayStep(int)  {}

// View is the render state derived by the last frame
type View struct {
	Frame      int64
	Active     string
	Phase      scroll.Phase
	PhaseCount int
	PhaseBar   float64

	Tilt        parallax.Transform
	TiltTarget  parallax.Transform
	TiltEnabled bool
	TiltSettled bool
	Pointer     parallax.PointerState

	StepsDone    []bool
	StepProgress float64

	Featured  []content.Insight
	RefreshIn string
}

// Option configures a Presenter
type Option func(*Presenter)

// WithLogger sets the logger, the default discards
func WithLogger(log *slog.Logger) Option {
	return func(p *Presenter) {
		if log != nil {
			p.log = log
		}
	}
}

// WithCues sets the audio cue sink
func WithCues(c Cues) Option {
	return func(p *Presenter) {
		if c != nil {
			p.cues = c
		}
	}
}

// Presenter wires the motion engines to one page and derives a View per frame
// All methods except the stepper callback run on the loop goroutine
type Presenter struct {
	cfg   config.Config
	site  *content.Site
	clock clock.TimeProvider
	log   *slog.Logger
	cues  Cues
	queue *event.EventQueue

	page    *Page
	scrollY int
	frame   int64

	tracker *visibility.Tracker
	phases  *scroll.PhaseWatcher
	hero    *parallax.Engine
	steps   *stepper.Sequence
	rotator *rotation.Rotator

	processRatio   float64
	processVisible bool
	nextRotation   time.Time
	dropped        uint64

	view View
}

// NewPresenter builds the engines for site, tp drives step timers and the rotation week
func NewPresenter(cfg config.Config, site *content.Site, tp clock.TimeProvider, opts ...Option) *Presenter {
	if tp == nil {
		tp = clock.NewRealTimeProvider()
	}

	p := &Presenter{
		cfg:     cfg,
		site:    site,
		clock:   tp,
		log:     logging.NewNop(),
		cues:    nopCues{},
		queue:   event.NewEventQueue(),
		tracker: visibility.NewTracker(),
		phases:  scroll.NewPhaseWatcher(len(site.Services)),
		hero:    parallax.NewEngine(cfg.ParallaxEngine()),
		rotator: rotation.NewRotator(cfg.Selector(), site.RotationPool()),
	}
	for _, opt := range opts {
		opt(p)
	}

	// Timer callbacks only publish, the loop applies them on its next frame
	p.steps = stepper.New(len(site.Process), cfg.StepDelay(), tp,
		stepper.WithOnComplete(func(step int) {
			event.EmitStepCompleted(p.queue, SectionProcess, step, 0)
		}),
	)

	p.view.StepsDone = make([]bool, p.steps.Steps())
	p.view.StepProgress = p.steps.Progress()
	p.view.PhaseCount = p.phases.PhaseCount()
	p.Resize(0, 0)
	return p
}

// Resize re-lays the page for a new viewport
func (p *Presenter) Resize(width, height int) {
	p.page = Layout(width, height, len(p.site.Services), p.cfg.Scroll.ScreensPerPhase)
	p.scrollY = p.page.ClampScroll(p.scrollY)
	p.hero.SetViewportWidth(float64(width))
	p.relayout()
}

// ScrollBy moves the viewport by rows, positive scrolls down
func (p *Presenter) ScrollBy(rows int) {
	p.ScrollTo(p.scrollY + rows)
}

// ScrollTo moves the viewport to document row y
func (p *Presenter) ScrollTo(y int) {
	y = p.page.ClampScroll(y)
	if y == p.scrollY {
		return
	}
	p.scrollY = y
	p.relayout()
}

// ScrollToSection jumps to the top of a section
func (p *Presenter) ScrollToSection(id string) bool {
	s, ok := p.page.Section(id)
	if !ok {
		return false
	}
	p.ScrollTo(s.Top)
	return true
}

// Pointer feeds a pointer position in screen cells to the hero card
func (p *Presenter) Pointer(x, y int) {
	if p.hero.Pointer(float64(x), float64(y)) {
		return
	}
	if p.hero.Inside() {
		p.hero.Leave()
	}
}

// PointerLeave reports that the pointer left the screen
func (p *Presenter) PointerLeave() {
	p.hero.Leave()
}

func (p *Presenter) relayout() {
	p.hero.SetBounds(p.page.HeroCard(p.scrollY))
	p.tracker.Invalidate()
}

// measure runs at most once per frame through the tracker
func (p *Presenter) measure() ([]visibility.Region, float64) {
	regions := p.page.Regions(p.scrollY)
	p.processRatio = 0
	for _, r := range regions {
		if r.ID == SectionProcess {
			p.processRatio = visibility.Ratio(r, float64(p.page.Height))
		}
	}
	return regions, float64(p.page.Height)
}

// Frame advances every engine by one animation frame and applies queued events
func (p *Presenter) Frame() View {
	p.frame++
	p.view.Frame = p.frame

	if res, changed := p.tracker.Frame(p.measure); changed {
		event.EmitActiveRegion(p.queue, res.ActiveID, res.Ratio, res.Found, p.frame)
	}

	visible := p.processRatio >= p.cfg.Stepper.EnterRatio
	if visible && !p.processVisible {
		first := !p.steps.Entered()
		if n := p.steps.Enter(); n > 0 {
			p.log.Debug("process section entered", "scheduled", n, "first", first)
		}
	}
	p.processVisible = visible

	phase, changed := p.phases.Observe(p.page.ServicesProgress(p.scrollY))
	p.view.Phase = phase
	if changed {
		event.EmitPhaseChanged(p.queue, SectionServices, phase.Index, p.phases.BarWidth(), p.frame)
	}

	p.view.Tilt = p.hero.Tick()
	p.view.TiltTarget = p.hero.TargetTransform()
	p.view.TiltEnabled = p.hero.Enabled()
	p.view.TiltSettled = p.hero.Settled()
	p.view.Pointer = p.hero.State()

	now := p.clock.Now()
	if !now.Before(p.nextRotation) {
		p.nextRotation = now.Add(parameter.RotationCheckInterval)
		sel, refreshed := p.rotator.Current(now)
		if refreshed {
			event.EmitRotationRefreshed(p.queue, sel.Seed, sel.IDs, p.frame)
		}
		p.view.RefreshIn = sel.RefreshIn(now)
	}

	p.queue.Drain(p.apply)
	if n := p.queue.Dropped(); n != p.dropped {
		p.log.Warn("events dropped", "total", n)
		p.dropped = n
	}
	return p.View()
}

func (p *Presenter) apply(ev event.Event) {
	switch payload := ev.Payload.(type) {
	case *event.ActiveRegionPayload:
		p.view.Active = payload.ID
		p.log.Debug("active region", "id", payload.ID, "ratio", payload.Ratio, "frame", ev.Frame, "passes", p.tracker.Passes())

	case *event.PhaseChangedPayload:
		p.view.PhaseBar = payload.BarWidth
		p.cues.PlayPhase(payload.Index)
		p.log.Debug("phase changed", "section", payload.Section, "index", payload.Index, "frame", ev.Frame)

	case *event.StepCompletedPayload:
		if payload.Step < 0 || payload.Step >= len(p.view.StepsDone) || !p.steps.IsComplete(payload.Step) {
			p.log.Warn("step event not backed by sequence", "step", payload.Step)
			return
		}
		p.view.StepsDone[payload.Step] = true
		p.view.StepProgress = p.steps.Progress()
		p.cues.PlayStep(payload.Step)
		p.log.Debug("step completed", "section", payload.Section, "step", payload.Step, "progress", p.view.StepProgress)

	case *event.RotationRefreshedPayload:
		featured := make([]content.Insight, 0, len(payload.IDs))
		for _, id := range payload.IDs {
			if in, ok := p.site.Insight(id); ok {
				featured = append(featured, in)
			}
		}
		p.view.Featured = featured
		p.log.Info("rotation refreshed", "seed", payload.Seed, "ids", payload.IDs)

	default:
		p.log.Warn("unhandled event", "type", ev.Type)
	}
}

// View returns a copy of the current render state
func (p *Presenter) View() View {
	v := p.view
	v.StepsDone = append([]bool(nil), p.view.StepsDone...)
	v.Featured = append([]content.Insight(nil), p.view.Featured...)
	return v
}

// Page returns the current layout
func (p *Presenter) Page() *Page { return p.page }

// ScrollY returns the current scroll offset
func (p *Presenter) ScrollY() int { return p.scrollY }

// Site returns the rendered content
func (p *Presenter) Site() *content.Site { return p.site }

// Close cancels pending step timers, repeated calls are no-ops
func (p *Presenter) Close() {
	if p.steps.Closed() {
		return
	}
	p.log.Debug("presenter closing", "pending_steps", p.steps.Pending(), "completed_steps", p.steps.Completed())
	p.steps.Close()
}
