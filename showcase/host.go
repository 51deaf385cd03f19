// Package showcase hosts the marketing page in a terminal
//
// The host runs a single loop fed by a tcell poll goroutine and a frame
// ticker. Input is applied to the Presenter immediately, engines advance
// and the screen is redrawn on each tick.
package showcase

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/keelpoint/sitemotion/core"
	"github.com/keelpoint/sitemotion/logging"
)

// Host owns the screen and the frame loop
type Host struct {
	screen     tcell.Screen
	presenter  *Presenter
	log        *slog.Logger
	interval   time.Duration
	scrollStep int
}

// NewHost binds a presenter to a screen, the screen is initialized by Run
func NewHost(screen tcell.Screen, presenter *Presenter, interval time.Duration, scrollStep int, log *slog.Logger) *Host {
	if log == nil {
		log = logging.NewNop()
	}
	if scrollStep < 1 {
		scrollStep = 1
	}
	return &Host{
		screen:     screen,
		presenter:  presenter,
		log:        log,
		interval:   interval,
		scrollStep: scrollStep,
	}
}

// Run drives the page until the user quits or ctx is done
func (h *Host) Run(ctx context.Context) error {
	if err := h.screen.Init(); err != nil {
		return err
	}
	core.SetCrashHook(h.screen.Fini)
	defer core.SetCrashHook(nil)
	defer h.screen.Fini()
	defer h.presenter.Close()

	h.screen.EnableMouse(tcell.MouseMotionEvents)
	h.screen.EnableFocus()
	h.screen.HideCursor()

	w, ht := h.screen.Size()
	h.presenter.Resize(w, ht)

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.log.Info("showcase started", "width", w, "height", ht, "frame_interval", h.interval)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !h.HandleEvent(ev) {
				h.log.Info("showcase stopped")
				return nil
			}

		case <-ticker.C:
			h.Step()
		}
	}
}

// Step advances one frame and redraws
func (h *Host) Step() {
	v := h.presenter.Frame()
	Draw(h.screen, h.presenter.Page(), h.presenter.ScrollY(), h.presenter.Site(), v)
	h.screen.Show()
}

// HandleEvent applies one terminal event, returns false on quit
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		switch btn := ev.Buttons(); {
		case btn&tcell.WheelUp != 0:
			h.presenter.ScrollBy(-h.scrollStep)
		case btn&tcell.WheelDown != 0:
			h.presenter.ScrollBy(h.scrollStep)
		}
		h.presenter.Pointer(x, y)

	case *tcell.EventFocus:
		if !ev.Focused {
			h.presenter.PointerLeave()
		}

	case *tcell.EventResize:
		w, ht := ev.Size()
		h.presenter.Resize(w, ht)
		h.screen.Sync()
		h.log.Debug("resized", "width", w, "height", ht)
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	page := h.presenter.Page()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		h.presenter.ScrollBy(-1)
	case tcell.KeyDown:
		h.presenter.ScrollBy(1)
	case tcell.KeyPgUp:
		h.presenter.ScrollBy(-page.Height)
	case tcell.KeyPgDn:
		h.presenter.ScrollBy(page.Height)
	case tcell.KeyHome:
		h.presenter.ScrollTo(0)
	case tcell.KeyEnd:
		h.presenter.ScrollTo(page.MaxScroll())
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r == 'j':
			h.presenter.ScrollBy(1)
		case r == 'k':
			h.presenter.ScrollBy(-1)
		case r >= '1' && r <= '9':
			if i := int(r - '1'); i < len(page.Sections) {
				h.presenter.ScrollToSection(page.Sections[i].ID)
			}
		}
	}
	return true
}
