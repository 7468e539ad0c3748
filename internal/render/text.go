// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00")).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4B5563")).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Italic(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34D399")).
			Underline(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2563EB")).
			Padding(0, 1)
)

// TextSurface renders cards as styled terminal text.
type TextSurface struct {
	// Width is the card width in cells; zero leaves cards unconstrained.
	Width int

	list  string
	count string
}

// Replace renders cards into the list, one bordered block per card.
func (s *TextSurface) Replace(cards []Card) {
	blocks := make([]string, len(cards))
	for i, c := range cards {
		blocks[i] = s.card(c)
	}
	s.list = strings.Join(blocks, "\n")
}

// SetCount updates the counter.
func (s *TextSurface) SetCount(n int) { s.count = strconv.Itoa(n) }

// ShowLoadError replaces the list with the load-failure message.
func (s *TextSurface) ShowLoadError(document string) {
	s.list = errorStyle.Render(LoadErrorMessage(document))
}

// List returns the rendered list.
func (s *TextSurface) List() string { return s.list }

// Count returns the counter text ("" before the first render).
func (s *TextSurface) Count() string { return s.count }

func (s *TextSurface) card(c Card) string {
	var lines []string
	lines = append(lines, titleStyle.Render(c.Title))
	if c.Subtitle != "" {
		lines = append(lines, subtitleStyle.Render(c.Subtitle))
	}
	if len(c.Tags) > 0 {
		tags := make([]string, len(c.Tags))
		for i, t := range c.Tags {
			tags[i] = tagStyle.Render(t)
		}
		lines = append(lines, strings.Join(tags, " "))
	}
	if c.Body != "" {
		lines = append(lines, c.Body)
	}
	if len(c.Links) > 0 {
		links := make([]string, len(c.Links))
		for i, l := range c.Links {
			label := l.Label
			if l.External {
				label += " ↗"
			}
			links[i] = linkStyle.Render(label) + " " + mutedStyle.Render(l.Href)
		}
		lines = append(lines, links...)
	}
	if c.Note != "" {
		lines = append(lines, mutedStyle.Render(c.Note))
	}

	style := cardStyle
	if s.Width > 0 {
		style = style.Width(s.Width)
	}
	return style.Render(strings.Join(lines, "\n"))
}
