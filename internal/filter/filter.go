// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter applies a listing's search box and facet selections to an
// indexed collection and orders the survivors.
package filter

import (
	"maps"
	"slices"
	"strings"

	"github.com/pdiddy/labinfos/internal/index"
	"github.com/pdiddy/labinfos/internal/textnorm"
)

// Criteria is the state of a listing's controls.
type Criteria struct {
	// FreeText is the raw search box content. It is normalized before
	// matching, the same way the index blobs are.
	FreeText string

	// Facets maps a facet name to the selected value. An empty value (the
	// "Todos" option) places no constraint.
	Facets map[string]string
}

// IsEmpty reports whether the criteria constrain nothing.
func (c Criteria) IsEmpty() bool {
	if c.FreeText != "" {
		return false
	}
	for _, v := range c.Facets {
		if v != "" {
			return false
		}
	}
	return true
}

// Clone returns a copy that shares no map with c.
func (c Criteria) Clone() Criteria {
	return Criteria{FreeText: c.FreeText, Facets: maps.Clone(c.Facets)}
}

// Field reads the raw value of a categorical field for facet matching.
type Field[R any] struct {
	Name  string
	Value func(R) string
}

// Apply returns the records of entries that satisfy every constraint in c,
// ordered by cmp. A facet selection matches by exact equality with the raw
// field value; free text matches when its normalized form is a substring of
// the entry's blob. Selections for facets not listed in fields are ignored.
// Equal records keep their input order. Apply never modifies entries.
func Apply[R any](entries []index.Entry[R], c Criteria, fields []Field[R], cmp func(a, b R) int) []R {
	if c.IsEmpty() {
		out := index.Records(entries)
		if cmp != nil {
			slices.SortStableFunc(out, cmp)
		}
		return out
	}

	query := textnorm.Normalize(c.FreeText)

	var active []Field[R]
	var want []string
	for _, f := range fields {
		if v := c.Facets[f.Name]; v != "" {
			active = append(active, f)
			want = append(want, v)
		}
	}

	out := make([]R, 0, len(entries))
next:
	for _, e := range entries {
		for i, f := range active {
			if f.Value(e.Record) != want[i] {
				continue next
			}
		}
		if query != "" && !strings.Contains(e.Blob, query) {
			continue
		}
		out = append(out, e.Record)
	}

	if cmp != nil {
		slices.SortStableFunc(out, cmp)
	}
	return out
}
