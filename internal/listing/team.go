// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"github.com/pdiddy/labinfos/internal/facet"
	"github.com/pdiddy/labinfos/internal/textnorm"
	"github.com/pdiddy/labinfos/pkg/types"
)

// FacetRole is the team listing's only facet.
const FacetRole = "role"

// PersonFields returns the searchable fields of p: name, role, bio,
// keywords, affiliation and area.
func PersonFields(p types.Person) []string {
	return []string{
		p.Name.String(),
		p.Role.String(),
		p.Bio.String(),
		p.Keywords.Join(" "),
		p.Affiliation.String(),
		p.Area.String(),
	}
}

// ComparePeople orders by name.
func ComparePeople(c *textnorm.Collator) func(a, b types.Person) int {
	return func(a, b types.Person) int {
		return c.Compare(a.Name.String(), b.Name.String())
	}
}

// TeamSpec is the team listing: a role facet, alphabetical ordering.
func TeamSpec(c *textnorm.Collator) Spec[types.Person] {
	return Spec[types.Person]{
		Fields: PersonFields,
		Facets: []FacetSpec[types.Person]{{
			Name:  FacetRole,
			Label: "Função",
			Value: func(p types.Person) string { return p.Role.String() },
			Order: facet.Collated(c),
		}},
		Compare: ComparePeople(c),
	}
}

// NewTeam indexes people for filtering.
func NewTeam(people []types.Person, c *textnorm.Collator) *Pipeline[types.Person] {
	return New(people, TeamSpec(c))
}

// Services returns the services of nec in document order. The services
// listing has no search or facets.
func Services(nec types.NEC) []types.Service {
	return nec.Services
}
