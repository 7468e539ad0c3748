// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/labinfos/internal/render"
	"github.com/pdiddy/labinfos/internal/textnorm"
	"github.com/pdiddy/labinfos/pkg/types"
)

// CSLItem is a bibliographic entry in CSL (Citation Style Language) form.
// Field names follow the CSL-JSON/CSL-YAML schema so the output is
// consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	Keyword        string    `yaml:"keyword,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
	Note           string    `yaml:"note,omitempty"`
}

// CSLName is a person's name in CSL form.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a date in CSL form using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// CSL writes publications as a CSL-YAML list to w.
func CSL(w io.Writer, pubs []types.Publication) error {
	items := make([]CSLItem, len(pubs))
	for i, p := range pubs {
		items[i] = ToCSLItem(p, i+1)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// cslTypes maps normalized publication-type prefixes to CSL item types.
var cslTypes = []struct {
	prefix string
	typ    string
}{
	{"artigo em conferencia", "paper-conference"},
	{"artigo em evento", "paper-conference"},
	{"artigo", "article-journal"},
	{"anais", "paper-conference"},
	{"conferencia", "paper-conference"},
	{"capitulo", "chapter"},
	{"livro", "book"},
	{"tese", "thesis"},
	{"dissertacao", "thesis"},
	{"monografia", "thesis"},
	{"relatorio", "report"},
	{"preprint", "article"},
	{"software", "software"},
	{"patente", "patent"},
}

// cslType maps a publication type to a CSL item type; unknown types are
// plain articles.
func cslType(t string) string {
	n := textnorm.Normalize(strings.TrimSpace(t))
	for _, m := range cslTypes {
		if strings.HasPrefix(n, m.prefix) {
			return m.typ
		}
	}
	return "article"
}

var doiPrefix = regexp.MustCompile(`(?i)^(https?://(dx\.)?doi\.org/|doi:\s*)`)

// bareDOI returns the DOI identifier without resolver or scheme, or "" when
// raw does not look like a DOI.
func bareDOI(raw string) string {
	d := doiPrefix.ReplaceAllString(strings.TrimSpace(raw), "")
	if !strings.HasPrefix(d, "10.") {
		return ""
	}
	return d
}

// ToCSLItem converts the n-th publication of a listing to a CSL item.
func ToCSLItem(p types.Publication, n int) CSLItem {
	item := CSLItem{
		ID:             fmt.Sprintf("pub%d", n),
		Type:           cslType(p.Type.String()),
		Title:          p.Title.String(),
		ContainerTitle: p.Journal.String(),
		Abstract:       p.Abstract.String(),
		Keyword:        p.Keywords.Join(", "),
		DOI:            bareDOI(p.DOI.String()),
		Note:           p.Note.String(),
	}
	if item.DOI != "" {
		item.ID = item.DOI
	}
	if p.Title.IsEmpty() {
		item.Title = render.PlaceholderTitle
	}
	for _, a := range splitAuthors(p.Authors.String()) {
		item.Author = append(item.Author, parseAuthorName(a))
	}
	if y := p.YearValue(); y > 0 {
		item.Issued = &CSLDate{DateParts: [][]int{{y}}}
	}
	switch {
	case p.PDF != "":
		item.URL = p.PDF.String()
	case p.Preprint != "":
		item.URL = p.Preprint.String()
	}
	return item
}

var authorAnd = regexp.MustCompile(`\s+(and|e|&)\s+`)

// splitAuthors splits an author line. Semicolons separate "Family, Given"
// entries; without them " and "/" e " and commas separate plain names.
func splitAuthors(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	var parts []string
	if strings.Contains(line, ";") {
		parts = strings.Split(line, ";")
	} else {
		parts = strings.Split(authorAnd.ReplaceAllString(line, ","), ",")
	}
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseAuthorName splits a name into CSL family/given parts. "Family, Given"
// splits on the comma; otherwise the last token is the family name.
// Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	if family, given, ok := strings.Cut(name, ","); ok {
		return CSLName{Family: strings.TrimSpace(family), Given: strings.TrimSpace(given)}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
