// Package rotation picks the weekly featured subset of a content pool
//
// Every caller in the same rotation week gets the same subset without any
// coordination: the subset is a pure function of the pool order, the count
// and a seed derived from the calendar week.
package rotation

import (
	"sort"
	"time"

	"github.com/dustin/go-humanize"
)

// Item is one pool entry, Index is its stable position in the pool
// Scores use Index, not ID, so reordering the pool changes the rotation
type Item struct {
	ID    string
	Index int
}

// NewPool builds items from ids, indexing them by position
func NewPool(ids ...string) []Item {
	pool := make([]Item, len(ids))
	for i, id := range ids {
		pool[i] = Item{ID: id, Index: i}
	}
	return pool
}

// Selection is the featured subset for one rotation week
type Selection struct {
	Seed          int
	IDs           []string
	NextRefreshAt time.Time
}

// Expired reports whether now is at or past the next refresh, or falls in a
// different rotation week than the one the selection was made for
// The seed check covers instants where the day count lags the calendar,
// such as the hour after a DST change or the days after Dec 31
func (s Selection) Expired(now time.Time) bool {
	return !now.Before(s.NextRefreshAt) || WeekSeed(now) != s.Seed
}

// RefreshIn renders the refresh instant relative to now, e.g. "3 days from now"
func (s Selection) RefreshIn(now time.Time) string {
	return humanize.RelTime(s.NextRefreshAt, now, "ago", "from now")
}

// Pick returns the k items of pool with the lowest scores for seed
// The pool is not modified; k larger than the pool returns the whole pool reordered by score
func Pick(pool []Item, k, seed int, scorer Scorer) []Item {
	if k <= 0 || len(pool) == 0 {
		return nil
	}
	if scorer == nil {
		scorer = SineScorer
	}

	type scored struct {
		item  Item
		score float64
	}
	ranked := make([]scored, len(pool))
	for i, it := range pool {
		ranked[i] = scored{item: it, score: scorer.Score(seed, it.Index)}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score < ranked[b].score
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]Item, k)
	for i := 0; i < k; i++ {
		out[i] = ranked[i].item
	}
	return out
}

// Selector picks a fixed-size weekly subset
type Selector struct {
	count  int
	scorer Scorer
}

// Option configures a Selector
type Option func(*Selector)

// WithScorer replaces the default sine scorer
func WithScorer(s Scorer) Option {
	return func(sel *Selector) {
		if s != nil {
			sel.scorer = s
		}
	}
}

// NewSelector creates a selector returning count items per week
func NewSelector(count int, opts ...Option) *Selector {
	s := &Selector{count: count, scorer: SineScorer}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Count returns the configured subset size
func (s *Selector) Count() int {
	return s.count
}

// Select returns the subset for the rotation week containing now
func (s *Selector) Select(pool []Item, now time.Time) Selection {
	seed := WeekSeed(now)
	return Selection{
		Seed:          seed,
		IDs:           s.SelectSeed(pool, seed),
		NextRefreshAt: NextRefresh(now),
	}
}

// SelectSeed returns the ids chosen for an explicit seed
func (s *Selector) SelectSeed(pool []Item, seed int) []string {
	items := Pick(pool, s.count, seed, s.scorer)
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
