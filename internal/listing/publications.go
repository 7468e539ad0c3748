// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"cmp"

	"github.com/pdiddy/labinfos/internal/facet"
	"github.com/pdiddy/labinfos/internal/textnorm"
	"github.com/pdiddy/labinfos/pkg/types"
)

// Publication facet names.
const (
	FacetYear = "year"
	FacetType = "type"
)

// PublicationFields returns the searchable fields of p: title, authors,
// journal, year, type, keywords and abstract.
func PublicationFields(p types.Publication) []string {
	return []string{
		p.Title.String(),
		p.Authors.String(),
		p.Journal.String(),
		p.Year.String(),
		p.Type.String(),
		p.Keywords.Join(" "),
		p.Abstract.String(),
	}
}

// ComparePublications orders by year, most recent first (a missing year
// counts as 0 and sorts last), then by title.
func ComparePublications(c *textnorm.Collator) func(a, b types.Publication) int {
	return func(a, b types.Publication) int {
		if n := cmp.Compare(b.YearValue(), a.YearValue()); n != 0 {
			return n
		}
		return c.Compare(a.Title.String(), b.Title.String())
	}
}

// PublicationSpec is the publications listing: year and type facets,
// recency-first ordering.
func PublicationSpec(c *textnorm.Collator) Spec[types.Publication] {
	return Spec[types.Publication]{
		Fields: PublicationFields,
		Facets: []FacetSpec[types.Publication]{
			{
				Name:  FacetYear,
				Label: "Ano",
				Value: func(p types.Publication) string { return p.Year.String() },
				Order: facet.NumericDesc(),
			},
			{
				Name:  FacetType,
				Label: "Tipo",
				Value: func(p types.Publication) string { return p.Type.String() },
				Order: facet.Collated(c),
			},
		},
		Compare: ComparePublications(c),
	}
}

// NewPublications indexes pubs for filtering.
func NewPublications(pubs []types.Publication, c *textnorm.Collator) *Pipeline[types.Publication] {
	return New(pubs, PublicationSpec(c))
}
