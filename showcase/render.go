package showcase

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/keelpoint/sitemotion/content"
	"github.com/keelpoint/sitemotion/core"
	"github.com/keelpoint/sitemotion/vmath"
)

const (
	serviceCardHeight = 4
	barMargin         = 4
)

var (
	styleBase   = tcell.StyleDefault.Foreground(rgb(core.RGBInk))
	styleNav    = tcell.StyleDefault.Foreground(rgb(core.RGBInk)).Background(rgb(core.RGBNav))
	styleActive = styleNav.Reverse(true).Bold(true)
	styleTitle  = styleBase.Bold(true)
	styleMuted  = tcell.StyleDefault.Foreground(rgb(core.RGBMuted))
	styleAccent = tcell.StyleDefault.Foreground(rgb(core.RGBAccent))
	styleDone   = tcell.StyleDefault.Foreground(rgb(core.RGBSuccess)).Bold(true)
)

func rgb(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw renders one frame of the page into screen, the caller shows it
func Draw(screen tcell.Screen, page *Page, scrollY int, site *content.Site, v View) {
	screen.Clear()

	for _, s := range page.Sections {
		top := s.Top - scrollY
		if top >= page.Height || top+s.Height <= 0 {
			continue
		}
		switch s.ID {
		case SectionHero:
			drawHero(screen, page, scrollY, site, v)
		case SectionServices:
			drawServices(screen, page, s, scrollY, site, v)
		case SectionProcess:
			drawProcess(screen, page, top, site, v)
		case SectionInsights:
			drawInsights(screen, page, top, v)
		case SectionContact:
			drawContact(screen, page, top, site)
		}
	}

	drawNav(screen, page, site, v)
	drawStatus(screen, page, v)
}

// opacityStyle fades text into the page background as opacity drops
func opacityStyle(opacity float64) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(core.RGBPage.Blend(core.RGBInk, vmath.Clamp01(opacity))))
}

func drawNav(screen tcell.Screen, page *Page, site *content.Site, v View) {
	fill(screen, page, 0, styleNav)
	x := drawText(screen, page, 1, 0, site.Brand, styleNav.Bold(true))
	x += 3
	for _, s := range page.Sections {
		style := styleNav
		if s.ID == v.Active {
			style = styleActive
		}
		x = drawText(screen, page, x, 0, " "+s.Label+" ", style) + 1
	}
}

func drawStatus(screen tcell.Screen, page *Page, v View) {
	y := page.Height - 1
	if y <= 0 {
		return
	}
	fill(screen, page, y, styleNav)
	status := fmt.Sprintf(" wheel/arrows scroll  1-5 jump  q quit  |  phase %d/%d %s  |  %s",
		v.Phase.Index+1, max(v.PhaseCount, 1), v.Phase.Window, tiltStatus(v))
	drawText(screen, page, 0, y, status, styleNav)
}

func tiltStatus(v View) string {
	switch {
	case !v.TiltEnabled:
		return "tilt off"
	case v.TiltSettled && v.TiltTarget.IsIdentity():
		return "tilt rest"
	case v.TiltSettled:
		return fmt.Sprintf("tilt %+.1f %+.1f", v.TiltTarget.RotateX, v.TiltTarget.RotateY)
	default:
		return fmt.Sprintf("tilt %+.1f %+.1f at %+.2f %+.2f",
			v.TiltTarget.RotateX, v.TiltTarget.RotateY, v.Pointer.NormalizedX, v.Pointer.NormalizedY)
	}
}

func drawHero(screen tcell.Screen, page *Page, scrollY int, site *content.Site, v View) {
	card := page.HeroCard(scrollY)
	if card.Empty() {
		return
	}

	left := int(card.Left) + int(math.Round(v.Tilt.TranslateX))
	top := int(card.Top) + int(math.Round(v.Tilt.TranslateY))
	w, h := int(card.Width), int(card.Height)

	// Pitch brightens the edge tilted toward the viewer
	border := opacityStyle(0.75 + v.Tilt.RotateX/40)

	for row := 0; row < h; row++ {
		rel := (float64(row) - float64(h-1)/2) / float64(h)
		skew := int(math.Round(rel * v.Tilt.RotateY * 0.5))
		x := left + skew
		y := top + row

		switch row {
		case 0:
			drawText(screen, page, x, y, "╭"+strings.Repeat("─", max(w-2, 0))+"╮", border)
		case h - 1:
			drawText(screen, page, x, y, "╰"+strings.Repeat("─", max(w-2, 0))+"╯", border)
		default:
			drawText(screen, page, x, y, "│", border)
			drawText(screen, page, x+w-1, y, "│", border)
		}

		switch row {
		case h/2 - 1:
			drawCentered(screen, page, x, w, y, site.Hero.Headline, styleTitle)
		case h/2 + 1:
			drawCentered(screen, page, x, w, y, site.Hero.Tagline, styleMuted)
		}
	}
}

func drawServices(screen tcell.Screen, page *Page, s Section, scrollY int, site *content.Site, v View) {
	pinTop := s.Top - scrollY + page.PinnedOffset(scrollY)
	clip := func(y int) bool { return y >= pinTop && y < pinTop+page.Height }

	if y := pinTop + 2; clip(y) {
		drawText(screen, page, barMargin, y, "What we do", styleTitle)
	}

	if y := pinTop + 3; clip(y) {
		cols := max(page.Width-2*barMargin, 0)
		filled := int(math.Round(v.PhaseBar * float64(cols)))
		drawText(screen, page, barMargin, y, strings.Repeat("━", filled), styleAccent)
		drawText(screen, page, barMargin+filled, y, strings.Repeat("─", cols-filled), styleMuted)
	}

	if y := pinTop + 4; clip(y) {
		x := barMargin
		for i, panel := range site.Services {
			style := styleMuted
			if i == v.Phase.Index {
				style = styleAccent.Bold(true)
			}
			x = drawText(screen, page, x, y, fmt.Sprintf("%d %s", i+1, panel.Title), style) + 3
		}
	}

	if v.Phase.Index < 0 || v.Phase.Index >= len(site.Services) {
		return
	}
	panel := site.Services[v.Phase.Index]
	shift := int(math.Round(v.Phase.TranslateY / 100 * serviceCardHeight))
	cardTop := pinTop + page.Height/2 - serviceCardHeight/2 + shift
	style := opacityStyle(v.Phase.Opacity)

	if clip(cardTop) {
		drawText(screen, page, barMargin, cardTop, panel.Title, style.Bold(true))
	}
	if clip(cardTop + 2) {
		drawText(screen, page, barMargin, cardTop+2, panel.Body, style)
	}
}

func drawProcess(screen tcell.Screen, page *Page, top int, site *content.Site, v View) {
	drawText(screen, page, barMargin, top+2, "How an engagement runs", styleTitle)

	for i, step := range site.Process {
		y := top + 4 + i*3
		mark, style := "[ ]", styleMuted
		if i < len(v.StepsDone) && v.StepsDone[i] {
			mark, style = "[x]", styleDone
		}
		drawText(screen, page, barMargin, y, fmt.Sprintf("%s %d. %s", mark, i+1, step.Title), style)
		drawText(screen, page, barMargin+4, y+1, step.Body, styleMuted)
	}

	if n := len(site.Process); n > 0 {
		drawText(screen, page, barMargin, top+4+n*3, fmt.Sprintf("%.0f%% complete", v.StepProgress*100), styleMuted)
	}
}

func drawInsights(screen tcell.Screen, page *Page, top int, v View) {
	drawText(screen, page, barMargin, top+2, "Featured this week", styleTitle)

	y := top + 4
	for _, in := range v.Featured {
		x := drawText(screen, page, barMargin, y, "• "+in.Title, styleBase.Bold(true))
		drawText(screen, page, x+2, y, "["+in.Tag+"]", styleAccent)
		drawText(screen, page, barMargin+2, y+1, in.Summary, styleMuted)
		y += 3
	}

	if v.RefreshIn != "" {
		drawText(screen, page, barMargin, y, "Next refresh "+v.RefreshIn, styleMuted)
	}
}

func drawContact(screen tcell.Screen, page *Page, top int, site *content.Site) {
	drawCentered(screen, page, 0, page.Width, top+2, site.Contact.Headline, styleTitle)
	drawCentered(screen, page, 0, page.Width, top+3, site.Contact.Email, styleAccent)
}

// drawText writes text from (x, y), clipped to the viewport, and returns the column after it
func drawText(screen tcell.Screen, page *Page, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		if y >= 0 && y < page.Height && x >= 0 && x < page.Width {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

func drawCentered(screen tcell.Screen, page *Page, left, width, y int, text string, style tcell.Style) {
	n := len([]rune(text))
	drawText(screen, page, left+max((width-n)/2, 0), y, text, style)
}

func fill(screen tcell.Screen, page *Page, y int, style tcell.Style) {
	for x := 0; x < page.Width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
