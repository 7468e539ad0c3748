// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"net"
	"net/url"
	"regexp"
	"strings"
)

// doiResolver is the canonical DOI resolver prefix.
const doiResolver = "https://doi.org/"

var (
	// absoluteHTTP matches values that are already resolver (or any web) URLs.
	absoluteHTTP = regexp.MustCompile(`(?i)^https?://`)

	// doiScheme matches the optional "doi:" prefix of a bare identifier.
	doiScheme = regexp.MustCompile(`(?i)^doi:\s*`)
)

// DOIURL expands a DOI into a resolver URL. "10.1000/xyz" and
// "doi:10.1000/xyz" both become "https://doi.org/10.1000/xyz"; values that
// are already http(s) URLs are returned unchanged; blank input yields "".
func DOIURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if absoluteHTTP.MatchString(raw) {
		return raw
	}
	return doiResolver + doiScheme.ReplaceAllString(raw, "")
}

// Link is one outbound reference on a card.
type Link struct {
	Label string
	Href  string

	// External is set when Href points outside the page's origin.
	External bool
}

// Target is the link's browsing context: "_blank" for external links.
func (l Link) Target() string {
	if l.External {
		return "_blank"
	}
	return ""
}

// Rel keeps the opened page from reaching back to the opener and from
// learning the referring URL. Set for external links only.
func (l Link) Rel() string {
	if l.External {
		return "noopener noreferrer"
	}
	return ""
}

// Linker builds links relative to the origin of the page being rendered.
type Linker struct {
	// Origin is the page's own URL. Only its scheme and host are used. A nil
	// Origin treats every absolute URL as external.
	Origin *url.URL
}

// NewLinker parses origin. An unparseable origin yields a Linker with no
// origin.
func NewLinker(origin string) Linker {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return Linker{}
	}
	return Linker{Origin: u}
}

// Link returns a link to href. ok is false when href is blank, in which case
// no link should be shown.
func (l Linker) Link(label, href string) (Link, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return Link{}, false
	}
	return Link{Label: label, Href: href, External: l.IsExternal(href)}, true
}

// IsExternal reports whether href, resolved against the origin, belongs to a
// different origin. Relative references are same-origin. Host-less schemes
// such as mailto: count as external. Unparseable references are not.
func (l Linker) IsExternal(href string) bool {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false
	}
	if l.Origin != nil {
		u = l.Origin.ResolveReference(u)
	}
	if !u.IsAbs() {
		return false
	}
	if u.Host == "" || l.Origin == nil {
		return true
	}
	return !strings.EqualFold(u.Scheme, l.Origin.Scheme) || hostPort(u) != hostPort(l.Origin)
}

// hostPort returns the lower-cased host with the scheme's default port made
// explicit, so "http://x" and "http://x:80" compare equal.
func hostPort(u *url.URL) string {
	host, port := strings.ToLower(u.Hostname()), u.Port()
	if port == "" {
		switch strings.ToLower(u.Scheme) {
		case "http":
			port = "80"
		case "https":
			port = "443"
		}
	}
	return net.JoinHostPort(host, port)
}

type linkSpec struct {
	label string
	href  string
}

func (l Linker) links(specs ...linkSpec) []Link {
	var out []Link
	for _, s := range specs {
		if link, ok := l.Link(s.label, s.href); ok {
			out = append(out, link)
		}
	}
	return out
}
