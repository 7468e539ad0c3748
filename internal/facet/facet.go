// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package facet derives the values offered by a listing's filter controls.
package facet

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/pdiddy/labinfos/internal/textnorm"
)

// All is the sentinel selection meaning "no constraint". It is always the
// first option of every facet control.
const (
	All      = ""
	AllLabel = "Todos"
)

// Order sorts the distinct values of a facet in place.
type Order func(values []string)

// Collated sorts values alphabetically using c.
func Collated(c *textnorm.Collator) Order {
	return func(values []string) {
		slices.SortStableFunc(values, c.Compare)
	}
}

// NumericDesc sorts values as integers, largest first. Values that do not
// parse as integers count as 0.
func NumericDesc() Order {
	return func(values []string) {
		slices.SortStableFunc(values, func(a, b string) int {
			return cmp.Compare(toInt(b), toInt(a))
		})
	}
}

func toInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Derive extracts one value per record with selector, drops empty values,
// removes duplicates and sorts what is left with order. The result reflects
// the whole collection passed in, which must be the full loaded collection
// rather than a filtered view.
func Derive[R any](records []R, selector func(R) string, order Order) []string {
	seen := make(map[string]struct{}, len(records))
	var values []string
	for _, r := range records {
		v := selector(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	if order != nil {
		order(values)
	}
	return values
}

// Option is one entry of a facet control.
type Option struct {
	Value string
	Label string
}

// Options returns the options of a facet control: the All sentinel followed
// by one option per value.
func Options(values []string) []Option {
	opts := make([]Option, 0, len(values)+1)
	opts = append(opts, Option{Value: All, Label: AllLabel})
	for _, v := range values {
		opts = append(opts, Option{Value: v, Label: v})
	}
	return opts
}

// Facet describes one categorical filter of a listing.
type Facet struct {
	// Name is the criteria key (e.g. "year", "type", "role").
	Name string

	// Label is the human-readable control label.
	Label string

	// Values are the distinct values of the full collection, sorted.
	Values []string
}

// Options returns the facet's control options including the All sentinel.
func (f Facet) Options() []Option { return Options(f.Values) }

// Next returns the value after current in the facet's option cycle
// (All, Values[0], ..., All). An unknown current value restarts the cycle.
func (f Facet) Next(current string) string {
	return f.step(current, 1)
}

// Prev returns the value before current in the facet's option cycle.
func (f Facet) Prev(current string) string {
	return f.step(current, -1)
}

func (f Facet) step(current string, delta int) string {
	opts := f.Options()
	i := slices.IndexFunc(opts, func(o Option) bool { return o.Value == current })
	if i < 0 {
		return All
	}
	i = (i + delta + len(opts)) % len(opts)
	return opts[i].Value
}
