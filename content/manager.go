package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

const (
	// MaxLineLength caps any single text field rendered by the terminal host
	MaxLineLength = 160
)

var (
	ErrEmptyPool   = errors.New("content: insight pool is empty")
	ErrMissingID   = errors.New("content: insight without id")
	ErrDuplicateID = errors.New("content: duplicate insight id")
)

//go:embed site.yaml
var defaultSite []byte

// Default returns the built-in site content
func Default() (*Site, error) {
	site, err := Parse(defaultSite)
	if err != nil {
		return nil, fmt.Errorf("embedded site content: %w", err)
	}
	return site, nil
}

// Load reads site content from a YAML file
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes, sanitizes and validates site content
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	site.sanitize()

	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the rotation pool invariants
func (s *Site) Validate() error {
	if len(s.Insights) == 0 {
		return ErrEmptyPool
	}
	seen := make(map[string]int, len(s.Insights))
	for i, in := range s.Insights {
		if in.ID == "" {
			return fmt.Errorf("%w: entry %d", ErrMissingID, i)
		}
		if prev, ok := seen[in.ID]; ok {
			return fmt.Errorf("%w: %q at entries %d and %d", ErrDuplicateID, in.ID, prev, i)
		}
		seen[in.ID] = i
	}
	return nil
}

func (s *Site) sanitize() {
	s.Brand = sanitizeLine(s.Brand)
	s.Hero.Headline = sanitizeLine(s.Hero.Headline)
	s.Hero.Tagline = sanitizeLine(s.Hero.Tagline)
	for i := range s.Services {
		s.Services[i].sanitize()
	}
	for i := range s.Process {
		s.Process[i].sanitize()
	}
	for i := range s.Insights {
		in := &s.Insights[i]
		in.ID = strings.TrimSpace(in.ID)
		in.Title = sanitizeLine(in.Title)
		in.Summary = sanitizeLine(in.Summary)
		in.Tag = sanitizeLine(in.Tag)
	}
	s.Contact.Headline = sanitizeLine(s.Contact.Headline)
	s.Contact.Email = sanitizeLine(s.Contact.Email)
}

func (p *Panel) sanitize() {
	p.Title = sanitizeLine(p.Title)
	p.Body = sanitizeLine(p.Body)
}

// sanitizeLine strips ANSI escape sequences and control characters, folds
// whitespace runs to one space and truncates to MaxLineLength runes
func sanitizeLine(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	space := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		// CSI sequence: ESC [ params final-byte
		if r == 0x1b {
			if i+1 < len(runes) && runes[i+1] == '[' {
				i += 2
				for i < len(runes) && (runes[i] < 0x40 || runes[i] > 0x7e) {
					i++
				}
			}
			continue
		}

		if unicode.IsSpace(r) {
			space = b.Len() > 0
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}

	out := []rune(b.String())
	if len(out) > MaxLineLength {
		out = out[:MaxLineLength]
	}
	return string(out)
}
