// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package listing assembles the concrete listings: publications and team,
// each an index plus facets plus ordering over one loaded collection, and
// the unfiltered services listing.
package listing

import (
	"github.com/pdiddy/labinfos/internal/facet"
	"github.com/pdiddy/labinfos/internal/filter"
	"github.com/pdiddy/labinfos/internal/index"
)

// Pipeline is the indexed form of one loaded collection. It is built once
// per load and read-only afterwards; Apply may be called on every control
// change.
type Pipeline[R any] struct {
	entries []index.Entry[R]
	facets  []facet.Facet
	fields  []filter.Field[R]
	cmp     func(a, b R) int
}

// FacetSpec declares one categorical filter of a listing.
type FacetSpec[R any] struct {
	Name  string
	Label string
	Value func(R) string
	Order facet.Order
}

// Spec declares how a record type is indexed, faceted and ordered.
type Spec[R any] struct {
	Fields  func(R) []string
	Facets  []FacetSpec[R]
	Compare func(a, b R) int
}

// New indexes records and derives the facet values from the full
// collection.
func New[R any](records []R, spec Spec[R]) *Pipeline[R] {
	p := &Pipeline[R]{
		entries: index.Build(records, spec.Fields),
		cmp:     spec.Compare,
	}
	for _, fs := range spec.Facets {
		p.facets = append(p.facets, facet.Facet{
			Name:   fs.Name,
			Label:  fs.Label,
			Values: facet.Derive(records, fs.Value, fs.Order),
		})
		p.fields = append(p.fields, filter.Field[R]{Name: fs.Name, Value: fs.Value})
	}
	return p
}

// Apply returns the filtered, ordered view for c. The view is a fresh slice
// on every call.
func (p *Pipeline[R]) Apply(c filter.Criteria) []R {
	return filter.Apply(p.entries, c, p.fields, p.cmp)
}

// Facets returns the facet descriptors in declaration order.
func (p *Pipeline[R]) Facets() []facet.Facet { return p.facets }

// FacetNames returns the facet names in declaration order.
func (p *Pipeline[R]) FacetNames() []string {
	names := make([]string, len(p.facets))
	for i, f := range p.facets {
		names[i] = f.Name
	}
	return names
}

// Len returns the size of the loaded collection.
func (p *Pipeline[R]) Len() int { return len(p.entries) }
