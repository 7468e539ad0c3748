// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package page

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/pdiddy/labinfos/internal/render"
)

// HTMLSurface displays cards inside a page's list mount and writes the
// result count into its counter mount.
type HTMLSurface struct {
	List  *html.Node
	Count *html.Node
}

// NewHTMLSurface returns the surface of m.
func NewHTMLSurface(m Mounts) *HTMLSurface {
	return &HTMLSurface{List: m.List, Count: m.Count}
}

// Replace implements render.Surface.
func (s *HTMLSurface) Replace(cards []render.Card) {
	if s.List == nil {
		return
	}
	removeChildren(s.List)
	for _, c := range cards {
		s.List.AppendChild(cardNode(c))
	}
}

// SetCount implements render.Surface.
func (s *HTMLSurface) SetCount(n int) {
	if s.Count != nil {
		setText(s.Count, strconv.Itoa(n))
	}
}

// ShowLoadError implements render.Surface.
func (s *HTMLSurface) ShowLoadError(document string) {
	if s.List == nil {
		return
	}
	removeChildren(s.List)
	msg := appendChildren(element("p", "class", "muted"),
		textNode("Não consegui carregar "),
		textElement("code", document),
		textNode(". Verifique o caminho/JSON."),
	)
	s.List.AppendChild(appendChildren(element("div", "class", "hint"), msg))
}

func cardNode(c render.Card) *html.Node {
	switch c.Kind {
	case render.KindPerson:
		return personNode(c)
	case render.KindService:
		return serviceNode(c)
	default:
		return publicationNode(c)
	}
}

func publicationNode(c render.Card) *html.Node {
	item := element("article", "class", "pub-item")
	appendChildren(item,
		textElement("h3", c.Title, "class", "pub-title"),
		textElement("p", c.Subtitle, "class", "pub-authors"),
		tagsNode("pub-meta", c.Tags),
	)
	if len(c.Links) > 0 {
		item.AppendChild(linksNode("pub-links", c.Links))
	}
	if c.Note != "" {
		item.AppendChild(textElement("p", c.Note, "class", "muted", "style", "margin-top: 10px;"))
	}
	return item
}

func personNode(c render.Card) *html.Node {
	head := appendChildren(element("div"),
		textElement("h3", c.Title, "class", "person-name"),
		textElement("p", c.Subtitle, "class", "person-role"),
	)
	top := appendChildren(element("div", "class", "person-top"),
		element("img", "class", "avatar", "alt", c.ImageAlt, "src", c.Image, "loading", "lazy"),
		head,
	)
	body := appendChildren(element("div", "class", "person-body"),
		textElement("p", c.Body, "class", "person-bio"),
	)
	if len(c.Tags) > 0 {
		body.AppendChild(tagsNode("person-tags", c.Tags))
	}
	if len(c.Links) > 0 {
		body.AppendChild(linksNode("person-links", c.Links))
	}
	return appendChildren(element("article", "class", "person"), top, body)
}

func serviceNode(c render.Card) *html.Node {
	return appendChildren(element("article", "class", "card"),
		textElement("h3", c.Title),
		textElement("p", c.Body),
		textElement("p", c.Note, "class", "card-meta"),
	)
}

func tagsNode(class string, tags []string) *html.Node {
	n := element("div", "class", class)
	for _, t := range tags {
		n.AppendChild(textElement("span", t, "class", "tag"))
	}
	return n
}

func linksNode(class string, links []render.Link) *html.Node {
	n := element("div", "class", class)
	for _, l := range links {
		n.AppendChild(anchor(l))
	}
	return n
}

func anchor(l render.Link) *html.Node {
	a := textElement("a", l.Label, "href", l.Href)
	markExternal(a, l)
	return a
}

// markExternal sets or clears the new-context attributes of a.
func markExternal(a *html.Node, l render.Link) {
	if l.External {
		setAttr(a, "target", l.Target())
		setAttr(a, "rel", l.Rel())
		return
	}
	removeAttr(a, "target")
	removeAttr(a, "rel")
}
