// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package page

import (
	"golang.org/x/net/html"

	"github.com/pdiddy/labinfos/internal/facet"
	"github.com/pdiddy/labinfos/internal/filter"
	"github.com/pdiddy/labinfos/internal/listing"
)

// SelectSpec names the select control of one facet.
type SelectSpec struct {
	Facet string
	ID    string
}

// MountSpec lists the ids of a listing's mount points. Empty ids are not
// required; every non-empty id must be present for the listing to attach.
type MountSpec struct {
	Name    string
	List    string
	Count   string
	Query   string
	Reset   string
	Selects []SelectSpec
}

// Mount points of the pages shipped with the site.
var (
	PublicationsMounts = MountSpec{
		Name:  "publications",
		List:  "pubList",
		Count: "pubCount",
		Query: "pubQuery",
		Reset: "pubReset",
		Selects: []SelectSpec{
			{Facet: listing.FacetYear, ID: "pubYear"},
			{Facet: listing.FacetType, ID: "pubType"},
		},
	}

	TeamMounts = MountSpec{
		Name:    "team",
		List:    "teamGrid",
		Count:   "teamCount",
		Query:   "teamQuery",
		Reset:   "teamReset",
		Selects: []SelectSpec{{Facet: listing.FacetRole, ID: "teamRole"}},
	}

	ServicesMounts = MountSpec{
		Name: "services",
		List: "necServices",
	}
)

// Mounts holds the located mount points of one listing.
type Mounts struct {
	List    *html.Node
	Count   *html.Node
	Query   *html.Node
	Reset   *html.Node
	Selects map[string]*html.Node
}

// Discover locates the mount points of spec in d. ok is false when any
// required marker is missing; the listing should then not be attached.
func Discover(d *Document, spec MountSpec) (m Mounts, ok bool) {
	find := func(id string) (*html.Node, bool) {
		if id == "" {
			return nil, true
		}
		n := d.ByID(id)
		return n, n != nil
	}

	var found bool
	if m.List, found = find(spec.List); !found || m.List == nil {
		return Mounts{}, false
	}
	if m.Count, found = find(spec.Count); !found {
		return Mounts{}, false
	}
	if m.Query, found = find(spec.Query); !found {
		return Mounts{}, false
	}
	if m.Reset, found = find(spec.Reset); !found {
		return Mounts{}, false
	}
	m.Selects = make(map[string]*html.Node, len(spec.Selects))
	for _, s := range spec.Selects {
		n, found := find(s.ID)
		if !found {
			return Mounts{}, false
		}
		m.Selects[s.Facet] = n
	}
	return m, true
}

// FillSelect replaces the options of sel with opts. The option whose value
// was selected before stays selected when it is still offered.
func FillSelect(sel *html.Node, opts []facet.Option) {
	if sel == nil {
		return
	}
	current := selectedValue(sel)
	removeChildren(sel)
	for _, o := range opts {
		opt := textElement("option", o.Label, "value", o.Value)
		if o.Value == current && current != facet.All {
			setAttr(opt, "selected", "")
		}
		sel.AppendChild(opt)
	}
}

// selectedValue returns the value of the selected option of sel, or the
// All sentinel.
func selectedValue(sel *html.Node) string {
	for c := sel.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "option" || !hasAttr(c, "selected") {
			continue
		}
		if v, ok := attr(c, "value"); ok {
			return v
		}
		return textContent(c)
	}
	return facet.All
}

// ReadControls returns the criteria currently expressed by the page's
// controls: the search box value and each select's selected option.
func ReadControls(m Mounts) filter.Criteria {
	c := filter.Criteria{Facets: make(map[string]string, len(m.Selects))}
	if m.Query != nil {
		c.FreeText, _ = attr(m.Query, "value")
	}
	for name, sel := range m.Selects {
		if sel != nil {
			c.Facets[name] = selectedValue(sel)
		}
	}
	return c
}

// WriteControls sets the page's controls to c so the rendered page shows
// the state it was rendered with.
func WriteControls(m Mounts, c filter.Criteria) {
	if m.Query != nil {
		if c.FreeText == "" {
			removeAttr(m.Query, "value")
		} else {
			setAttr(m.Query, "value", c.FreeText)
		}
	}
	for name, sel := range m.Selects {
		if sel == nil {
			continue
		}
		want := c.Facets[name]
		for o := sel.FirstChild; o != nil; o = o.NextSibling {
			if o.Type != html.ElementNode || o.Data != "option" {
				continue
			}
			v, _ := attr(o, "value")
			if v == want && want != facet.All {
				setAttr(o, "selected", "")
			} else {
				removeAttr(o, "selected")
			}
		}
	}
}
