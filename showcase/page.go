package showcase

import (
	"math"

	"github.com/keelpoint/sitemotion/core"
	"github.com/keelpoint/sitemotion/scroll"
	"github.com/keelpoint/sitemotion/visibility"
)

// Section ids in page order
const (
	SectionHero     = "hero"
	SectionServices = "services"
	SectionProcess  = "process"
	SectionInsights = "insights"
	SectionContact  = "contact"
)

const (
	heroCardWidth  = 60
	heroCardHeight = 9

	// rows kept free at the top for the navigation bar
	navRows = 1

	minContactHeight = 6
)

// Section is one vertical block of the page in document rows
type Section struct {
	ID     string
	Label  string
	Top    int
	Height int
}

// Bottom returns the first row after the section
func (s Section) Bottom() int { return s.Top + s.Height }

// Page is the document layout for one viewport size
type Page struct {
	Width    int
	Height   int
	Sections []Section
}

// Layout stacks the sections for a viewport of width x height cells
// The services section is pinned and scrolls through screensPerPhase viewports per phase
func Layout(width, height, phaseCount int, screensPerPhase float64) *Page {
	if height < 1 {
		height = 1
	}
	if phaseCount < 1 {
		phaseCount = 1
	}

	pinned := int(math.Ceil(float64(phaseCount)*screensPerPhase*float64(height))) + height
	heights := []struct {
		id, label string
		h         int
	}{
		{SectionHero, "Home", height},
		{SectionServices, "Services", pinned},
		{SectionProcess, "Process", height},
		{SectionInsights, "Insights", height},
		{SectionContact, "Contact", max(height/2, minContactHeight)},
	}

	p := &Page{Width: width, Height: height, Sections: make([]Section, 0, len(heights))}
	top := 0
	for _, s := range heights {
		p.Sections = append(p.Sections, Section{ID: s.id, Label: s.label, Top: top, Height: s.h})
		top += s.h
	}
	return p
}

// DocumentHeight returns the total scrollable height
func (p *Page) DocumentHeight() int {
	if len(p.Sections) == 0 {
		return 0
	}
	return p.Sections[len(p.Sections)-1].Bottom()
}

// MaxScroll returns the largest valid scroll offset
func (p *Page) MaxScroll() int {
	return max(p.DocumentHeight()-p.Height, 0)
}

// ClampScroll limits y to [0, MaxScroll]
func (p *Page) ClampScroll(y int) int {
	return min(max(y, 0), p.MaxScroll())
}

// Section looks up a section by id
func (p *Page) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Regions measures every section relative to the viewport at scrollY
func (p *Page) Regions(scrollY int) []visibility.Region {
	regions := make([]visibility.Region, len(p.Sections))
	for i, s := range p.Sections {
		top := float64(s.Top - scrollY)
		regions[i] = visibility.Region{
			ID:     s.ID,
			Top:    top,
			Bottom: top + float64(s.Height),
			Height: float64(s.Height),
		}
	}
	return regions
}

// ServicesProgress returns the pinned progress of the services section
func (p *Page) ServicesProgress(scrollY int) float64 {
	s, _ := p.Section(SectionServices)
	return scroll.PinProgress(float64(scrollY), float64(s.Top), float64(s.Height), float64(p.Height))
}

// PinnedOffset returns how far the pinned services content has been held in place
func (p *Page) PinnedOffset(scrollY int) int {
	s, _ := p.Section(SectionServices)
	return min(max(scrollY-s.Top, 0), max(s.Height-p.Height, 0))
}

// HeroCard returns the on-screen rectangle of the hero card at scrollY
func (p *Page) HeroCard(scrollY int) core.Bounds {
	s, _ := p.Section(SectionHero)
	w := min(heroCardWidth, max(p.Width-4, 0))
	h := min(heroCardHeight, max(s.Height-navRows-2, 0))
	return core.Bounds{
		Left:   float64((p.Width - w) / 2),
		Top:    float64(s.Top - scrollY + navRows + (s.Height-navRows-h)/2),
		Width:  float64(w),
		Height: float64(h),
	}
}
