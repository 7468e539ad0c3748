// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package binder holds the interactive state of a listing's controls and
// re-runs the listing each time the state changes.
//
// Every change runs the callback exactly once, synchronously, on the
// caller's goroutine. There is no debounce: a burst of keystrokes yields one
// pass per keystroke.
package binder

import (
	"slices"

	"github.com/pdiddy/labinfos/internal/facet"
	"github.com/pdiddy/labinfos/internal/filter"
	"github.com/pdiddy/labinfos/internal/listing"
	"github.com/pdiddy/labinfos/internal/render"
)

// Binder owns a search text, one selection per facet and the callback run
// after every change.
type Binder struct {
	criteria filter.Criteria
	facets   []string
	apply    func(filter.Criteria)
}

// New returns a Binder over the named facets, all set to facet.All. apply
// receives a copy of the criteria after every change.
func New(facets []string, apply func(filter.Criteria)) *Binder {
	b := &Binder{facets: slices.Clone(facets), apply: apply}
	b.clear()
	return b
}

func (b *Binder) clear() {
	b.criteria = filter.Criteria{Facets: make(map[string]string, len(b.facets))}
	for _, name := range b.facets {
		b.criteria.Facets[name] = facet.All
	}
}

// Criteria returns a copy of the current state.
func (b *Binder) Criteria() filter.Criteria { return b.criteria.Clone() }

// Facets returns the facet names the binder was built with.
func (b *Binder) Facets() []string { return slices.Clone(b.facets) }

// Run applies the current state without changing it.
func (b *Binder) Run() {
	if b.apply != nil {
		b.apply(b.Criteria())
	}
}

// SetQuery replaces the search text and runs.
func (b *Binder) SetQuery(q string) {
	b.criteria.FreeText = q
	b.Run()
}

// SetFacet selects value for the named facet and runs. Unknown facets are
// ignored and do not run.
func (b *Binder) SetFacet(name, value string) {
	if !slices.Contains(b.facets, name) {
		return
	}
	b.criteria.Facets[name] = value
	b.Run()
}

// Load replaces the whole state, keeping only known facets, and runs.
func (b *Binder) Load(c filter.Criteria) {
	b.clear()
	b.criteria.FreeText = c.FreeText
	for name, value := range c.Facets {
		if _, ok := b.criteria.Facets[name]; ok {
			b.criteria.Facets[name] = value
		}
	}
	b.Run()
}

// Reset clears the search text and every facet, then runs.
func (b *Binder) Reset() {
	b.clear()
	b.Run()
}

// Bind wires a pipeline to a surface: every change filters and sorts the
// pipeline's records, maps them to cards and renders them.
func Bind[R any](p *listing.Pipeline[R], s render.Surface, toCard func(R) render.Card) *Binder {
	return New(p.FacetNames(), func(c filter.Criteria) {
		render.Render(s, render.Cards(p.Apply(c), toCard))
	})
}
