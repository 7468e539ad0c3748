// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strconv"
	"strings"
)

// Publication is one entry of data/publications.json.
type Publication struct {
	// Title is the publication title.
	Title Text `json:"title" yaml:"title"`

	// Authors is the author line exactly as the editor typed it.
	Authors Text `json:"authors" yaml:"authors"`

	// Year is integer-like ("2021" or 2021). Compared as text when filtering
	// and as an integer when sorting.
	Year Text `json:"year" yaml:"year"`

	// Type is the publication category (e.g. "Artigo", "Capítulo").
	Type Text `json:"type" yaml:"type"`

	// Journal is the venue name.
	Journal Text `json:"journal" yaml:"journal"`

	Keywords TextList `json:"keywords" yaml:"keywords"`
	Abstract Text     `json:"abstract" yaml:"abstract"`

	// DOI is either a bare identifier ("10.1000/xyz", "doi:10.1000/xyz")
	// or a full resolver URL.
	DOI        Text `json:"doi" yaml:"doi"`
	PDF        Text `json:"pdf" yaml:"pdf"`
	Preprint   Text `json:"preprint" yaml:"preprint"`
	CodeOrData Text `json:"code_or_data" yaml:"code_or_data"`
	Note       Text `json:"note" yaml:"note"`
}

// YearValue returns the year as an integer, 0 when absent or not numeric.
func (p Publication) YearValue() int {
	n, err := strconv.Atoi(strings.TrimSpace(string(p.Year)))
	if err != nil {
		return 0
	}
	return n
}

// Person is one entry of data/team.json.
type Person struct {
	Name        Text     `json:"name" yaml:"name"`
	Role        Text     `json:"role" yaml:"role"`
	Bio         Text     `json:"bio" yaml:"bio"`
	Keywords    TextList `json:"keywords" yaml:"keywords"`
	Affiliation Text     `json:"affiliation" yaml:"affiliation"`
	Area        Text     `json:"area" yaml:"area"`

	// Photo is the avatar URL, relative to the site root or absolute.
	Photo Text `json:"photo" yaml:"photo"`

	Lattes  Text `json:"lattes" yaml:"lattes"`
	ORCID   Text `json:"orcid" yaml:"orcid"`
	Scholar Text `json:"scholar" yaml:"scholar"`
	GitHub  Text `json:"github" yaml:"github"`

	// Email is a bare address; the renderer adds the mailto: scheme.
	Email Text `json:"email" yaml:"email"`
}

// Service is one entry of the services listing in data/nec.json.
type Service struct {
	Title       Text `json:"title" yaml:"title"`
	Description Text `json:"description" yaml:"description"`
	Note        Text `json:"note" yaml:"note"`
}

// NEC holds data/nec.json: the services listing plus the free-form fields
// the services page binds through data-nec markers.
type NEC struct {
	Email     Text      `json:"email" yaml:"email"`
	FormURL   Text      `json:"formUrl" yaml:"formUrl"`
	Services  []Service `json:"services" yaml:"services"`
	HowWeWork TextList  `json:"howWeWork" yaml:"howWeWork"`

	// Fields keeps every top-level scalar by key for data-nec lookups.
	Fields map[string]Text `json:"-" yaml:"-"`
}

// SocialLink is one entry of site.social.
type SocialLink struct {
	Label Text `json:"label" yaml:"label"`
	URL   Text `json:"url" yaml:"url"`
}

// Metrics holds the hero counters of the home page.
type Metrics struct {
	Publications Text `json:"publications" yaml:"publications"`
	People       Text `json:"people" yaml:"people"`
	Projects     Text `json:"projects" yaml:"projects"`
}

// Site holds data/site.json: contact data and social links shared by every
// page.
type Site struct {
	Email   Text         `json:"email" yaml:"email"`
	Social  []SocialLink `json:"social" yaml:"social"`
	Metrics Metrics      `json:"metrics" yaml:"metrics"`

	// Fields keeps every top-level scalar by key for data-site lookups.
	Fields map[string]Text `json:"-" yaml:"-"`
}
