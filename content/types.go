package content

import "github.com/keelpoint/sitemotion/rotation"

// Site is everything the presentation layer renders from data
type Site struct {
	Brand    string    `yaml:"brand"`
	Hero     Hero      `yaml:"hero"`
	Services []Panel   `yaml:"services"`
	Process  []Panel   `yaml:"process"`
	Insights []Insight `yaml:"insights"`
	Contact  Contact   `yaml:"contact"`
}

// Hero is the pointer-tilted lead card
type Hero struct {
	Headline string `yaml:"headline"`
	Tagline  string `yaml:"tagline"`
}

// Panel is one scrollytelling phase or one process step
type Panel struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Insight is one entry of the weekly rotation pool
type Insight struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Tag     string `yaml:"tag"`
}

// Contact closes the page
type Contact struct {
	Headline string `yaml:"headline"`
	Email    string `yaml:"email"`
}

// RotationPool returns the insights as rotation items indexed by file order
func (s *Site) RotationPool() []rotation.Item {
	ids := make([]string, len(s.Insights))
	for i, in := range s.Insights {
		ids[i] = in.ID
	}
	return rotation.NewPool(ids...)
}

// Insight looks up an insight by id
func (s *Site) Insight(id string) (Insight, bool) {
	for _, in := range s.Insights {
		if in.ID == id {
			return in, true
		}
	}
	return Insight{}, false
}
