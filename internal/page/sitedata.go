// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package page

import (
	"strconv"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/pdiddy/labinfos/internal/listing"
	"github.com/pdiddy/labinfos/internal/render"
	"github.com/pdiddy/labinfos/pkg/types"
)

// Placeholders of the shared page fields.
const (
	PlaceholderSiteEmail = "[email@exemplo.org]"
	PlaceholderNECEmail  = "[nec@exemplo.org]"
	PlaceholderFormURL   = "[link do formulário]"
	PlaceholderMetric    = "—"
	defaultSocialLabel   = "Link"
)

// Markers of the shared page fields.
const (
	attrSite   = "data-site"
	attrNEC    = "data-nec"
	attrMetric = "data-metric"

	idYear         = "year"
	idSocialLinks  = "socialLinks"
	idHeroMetrics  = "heroMetrics"
	idNECHowWeWork = "necHowWeWork"
)

// SetYear writes the year of now into the #year element.
func SetYear(d *Document, now time.Time) {
	if n := d.ByID(idYear); n != nil {
		setText(n, strconv.Itoa(now.Year()))
	}
}

// ApplySite fills every data-site element from site, then rebuilds the
// social links and the hero metrics.
func ApplySite(d *Document, site types.Site, l render.Linker) {
	for _, n := range d.ByAttr(attrSite) {
		key, _ := attr(n, attrSite)
		value := site.Fields[key].String()
		if key == "email" {
			value = firstText(value, site.Email)
			fillEmail(n, value, PlaceholderSiteEmail)
			continue
		}
		if value != "" {
			setText(n, value)
		}
	}

	if n := d.ByID(idSocialLinks); n != nil {
		removeChildren(n)
		for _, s := range site.Social {
			label := s.Label.String()
			if label == "" {
				label = defaultSocialLabel
			}
			href := s.URL.String()
			if href == "" {
				href = "#"
			}
			n.AppendChild(anchor(render.Link{Label: label, Href: href, External: l.IsExternal(href)}))
		}
	}

	applyMetrics(d, site.Metrics)
}

func applyMetrics(d *Document, m types.Metrics) {
	root := d.ByID(idHeroMetrics)
	if root == nil {
		return
	}
	values := map[string]types.Text{
		"publications": m.Publications,
		"people":       m.People,
		"projects":     m.Projects,
	}
	walk(root, func(n *html.Node) bool {
		key, ok := attr(n, attrMetric)
		if !ok {
			return true
		}
		v, known := values[key]
		if !known {
			return true
		}
		if count, err := strconv.Atoi(v.String()); err == nil && count != 0 {
			setText(n, strconv.Itoa(count))
		} else {
			setText(n, PlaceholderMetric)
		}
		return true
	})
}

// ApplyNEC fills every data-nec element from nec, then rebuilds the
// services listing and the how-we-work paragraphs.
func ApplyNEC(d *Document, nec types.NEC, l render.Linker) {
	for _, n := range d.ByAttr(attrNEC) {
		key, _ := attr(n, attrNEC)
		value := nec.Fields[key].String()
		switch key {
		case "email":
			value = firstText(value, nec.Email)
		case "formUrl":
			value = firstText(value, nec.FormURL)
		}
		switch {
		case key == "email" && n.DataAtom == atom.A:
			fillEmail(n, value, PlaceholderNECEmail)
		case key == "formUrl" && n.DataAtom == atom.A:
			fillFormURL(n, value, l)
		case value != "":
			setText(n, value)
		}
	}

	if n := d.ByID(ServicesMounts.List); n != nil {
		(&HTMLSurface{List: n}).Replace(render.Cards(listing.Services(nec), render.Service))
	}

	if n := d.ByID(idNECHowWeWork); n != nil {
		removeChildren(n)
		for _, p := range nec.HowWeWork {
			n.AppendChild(textElement("p", p.String()))
		}
	}
}

// fillEmail writes an address into n. Anchors also get a mailto: href, or
// "#" when the address is missing.
func fillEmail(n *html.Node, email, placeholder string) {
	if email == "" {
		setText(n, placeholder)
	} else {
		setText(n, email)
	}
	if n.DataAtom != atom.A {
		return
	}
	if email == "" {
		setAttr(n, "href", "#")
		return
	}
	setAttr(n, "href", "mailto:"+email)
}

func fillFormURL(n *html.Node, url string, l render.Linker) {
	if url == "" {
		setText(n, PlaceholderFormURL)
		setAttr(n, "href", "#")
		return
	}
	setText(n, url)
	setAttr(n, "href", url)
	if l.IsExternal(url) {
		markExternal(n, render.Link{External: true})
	}
}

func firstText(s string, fallback types.Text) string {
	if s != "" {
		return s
	}
	return fallback.String()
}
