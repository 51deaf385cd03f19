package showcase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keelpoint/sitemotion/core"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(w, h)
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	return screen
}

// screenText returns the rows of the screen as plain strings
func screenText(screen tcell.Screen, w, h int) []string {
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			mainc, _, _, _ := screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			sb.WriteRune(mainc)
		}
		rows[y] = sb.String()
	}
	return rows
}

func containsRow(rows []string, s string) bool {
	for _, r := range rows {
		if strings.Contains(r, s) {
			return true
		}
	}
	return false
}

func TestDrawHero(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	p, _, _ := newTestPresenter(t)

	v := p.Frame()
	Draw(screen, p.Page(), p.ScrollY(), p.Site(), v)
	rows := screenText(screen, 100, 30)

	assert.Contains(t, rows[0], p.Site().Brand)
	assert.Contains(t, rows[0], "Services")
	assert.True(t, containsRow(rows, p.Site().Hero.Headline))
	assert.Contains(t, rows[29], "phase 1/4")
	assert.Contains(t, rows[29], "tilt rest")

	// Untilted card corners sit on the layout bounds
	mainc, _, _, _ := screen.GetContent(20, 11)
	assert.Equal(t, '╭', mainc)
	mainc, _, _, _ = screen.GetContent(79, 19)
	assert.Equal(t, '╯', mainc)
}

func TestDrawActiveNavHighlight(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	p, _, _ := newTestPresenter(t)

	p.ScrollToSection(SectionProcess)
	v := p.Frame()
	Draw(screen, p.Page(), p.ScrollY(), p.Site(), v)

	rows := screenText(screen, 100, 30)
	x := strings.Index(rows[0], " Process ")
	require.GreaterOrEqual(t, x, 0)

	_, _, style, _ := screen.GetContent(x+1, 0)
	_, _, attrs := style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrReverse)

	hx := strings.Index(rows[0], " Home ")
	require.GreaterOrEqual(t, hx, 0)
	_, _, style, _ = screen.GetContent(hx+1, 0)
	_, _, attrs = style.Decompose()
	assert.Zero(t, attrs&tcell.AttrReverse)
}

func TestDrawServicesPhase(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	p, _, _ := newTestPresenter(t)

	services, _ := p.Page().Section(SectionServices)
	distance := services.Height - p.Page().Height

	// Hold window of phase 1
	p.ScrollTo(services.Top + distance*17/40)
	v := p.Frame()
	require.Equal(t, 1, v.Phase.Index)

	Draw(screen, p.Page(), p.ScrollY(), p.Site(), v)
	rows := screenText(screen, 100, 30)

	assert.True(t, containsRow(rows, "What we do"))
	assert.True(t, containsRow(rows, p.Site().Services[1].Body))
	assert.False(t, containsRow(rows, p.Site().Services[2].Body))
}

func TestDrawProcessCompletion(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	p, tp, _ := newTestPresenter(t)

	p.ScrollToSection(SectionProcess)
	p.Frame()
	tp.Advance(time.Second)
	v := p.Frame()

	Draw(screen, p.Page(), p.ScrollY(), p.Site(), v)
	rows := screenText(screen, 100, 30)

	assert.True(t, containsRow(rows, "[x] 1. "+p.Site().Process[0].Title))
	assert.True(t, containsRow(rows, "[x] 2. "+p.Site().Process[1].Title))
	assert.True(t, containsRow(rows, "[ ] 3. "+p.Site().Process[2].Title))
	assert.Equal(t, 0.5, v.StepProgress)
	assert.True(t, containsRow(rows, "50% complete"))
}

func TestTiltStatus(t *testing.T) {
	p, _, _ := newTestPresenter(t)

	v := p.Frame()
	assert.Equal(t, "tilt rest", tiltStatus(v))

	// Three quarters across the card
	p.Pointer(65, 11)
	v = p.Frame()
	assert.False(t, v.TiltSettled)
	assert.Contains(t, tiltStatus(v), " at +0.25 ")

	for i := 0; i < 300; i++ {
		v = p.Frame()
	}
	require.True(t, v.TiltSettled)
	assert.Equal(t, v.TiltTarget, v.Tilt)
	assert.NotContains(t, tiltStatus(v), " at ")

	p.Resize(60, 30)
	assert.Equal(t, "tilt off", tiltStatus(p.Frame()))
}

func TestDrawInsights(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	p, _, _ := newTestPresenter(t)

	p.ScrollToSection(SectionInsights)
	v := p.Frame()
	Draw(screen, p.Page(), p.ScrollY(), p.Site(), v)
	rows := screenText(screen, 100, 30)

	require.NotEmpty(t, v.Featured)
	for _, in := range v.Featured {
		assert.True(t, containsRow(rows, in.Title), "missing %s", in.ID)
	}
	assert.True(t, containsRow(rows, "Next refresh "+v.RefreshIn))
}

func TestHostHandleEvent(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	p, _, _ := newTestPresenter(t)
	h := NewHost(screen, p, 16*time.Millisecond, 2, nil)

	assert.True(t, h.HandleEvent(tcell.NewEventMouse(50, 5, tcell.WheelDown, tcell.ModNone)))
	assert.Equal(t, 2, p.ScrollY())

	assert.True(t, h.HandleEvent(tcell.NewEventMouse(50, 5, tcell.WheelUp, tcell.ModNone)))
	assert.Equal(t, 0, p.ScrollY())

	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone)))
	process, _ := p.Page().Section(SectionProcess)
	assert.Equal(t, process.Top, p.ScrollY())

	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone)))
	assert.Equal(t, 0, p.ScrollY())

	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone)))
	assert.Equal(t, p.Page().MaxScroll(), p.ScrollY())

	assert.True(t, h.HandleEvent(tcell.NewEventResize(120, 40)))
	assert.Equal(t, 120, p.Page().Width)
	assert.Equal(t, 40, p.Page().Height)

	h.Step()

	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestHostRunStopsOnContext(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(100, 30)
	p, _, _ := newTestPresenter(t)
	h := NewHost(screen, p, 16*time.Millisecond, 2, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, h.Run(ctx))
	assert.Positive(t, p.View().Frame)
}

func TestOpacityStyleFadesToPage(t *testing.T) {
	fg, _, _ := opacityStyle(1).Decompose()
	assert.Equal(t, rgb(core.RGBInk), fg)

	fg, _, _ = opacityStyle(0).Decompose()
	assert.Equal(t, rgb(core.RGBPage), fg)

	fg, _, _ = opacityStyle(-3).Decompose()
	assert.Equal(t, rgb(core.RGBPage), fg)
}
