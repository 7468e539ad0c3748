// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive terminal listing.
//
// The bubbletea event loop is the only goroutine touching the listing state.
// Loading the document is the single command that runs off the loop; every
// keystroke after that filters, sorts and renders synchronously in Update.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/labinfos/internal/binder"
	"github.com/pdiddy/labinfos/internal/facet"
	"github.com/pdiddy/labinfos/internal/filter"
	"github.com/pdiddy/labinfos/internal/logging"
	"github.com/pdiddy/labinfos/internal/render"
)

type state int

const (
	stateLoading state = iota
	stateReady
	stateFailed
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFF00")).
			Padding(0, 2).
			Bold(true)

	facetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	focusedFacetStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#2563EB")).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Italic(true)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2563EB")).
			Padding(0, 1)
)

const helpText = "digite para buscar · tab: busca/filtros · ←/→: cursor ou valor do filtro · ctrl+r: limpar · ↑/↓ pgup/pgdn: rolar · esc: sair"

type loadedMsg struct {
	binder *binder.Binder
	facets []facet.Facet
}

type loadFailedMsg struct {
	err error
}

// Model is the bubbletea model of one listing.
type Model struct {
	ctx     context.Context
	listing Listing
	log     *logging.Logger

	state   state
	err     error
	surface *render.TextSurface
	binder  *binder.Binder
	facets  []facet.Facet

	// focus is 0 for the search box, i+1 for facet i.
	focus int

	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int
}

// New returns the model of l. Loading starts when the program starts.
func New(ctx context.Context, l Listing, log *logging.Logger) Model {
	if log == nil {
		log = logging.Nop()
	}
	in := textinput.New()
	in.Placeholder = "Buscar"
	in.Prompt = "🔎 "
	in.Focus()

	return Model{
		ctx:      ctx,
		listing:  l,
		log:      log,
		surface:  &render.TextSurface{},
		input:    in,
		viewport: viewport.New(80, 20),
	}
}

// Init starts loading the listing.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.load())
}

func (m Model) load() tea.Cmd {
	ctx, l, s := m.ctx, m.listing, m.surface
	return func() tea.Msg {
		b, facets, err := l.Load(ctx, s)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{binder: b, facets: facets}
	}
}

// Update handles one event.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.binder != nil {
			m.binder.Run()
		}
		m.refresh()
		return m, nil

	case loadedMsg:
		m.state = stateReady
		m.binder = msg.binder
		m.facets = msg.facets
		m.log.Info("listing loaded", "document", m.listing.Document, "facets", len(m.facets))
		m.binder.Load(m.criteriaFromControls())
		m.refresh()
		return m, nil

	case loadFailedMsg:
		m.state = stateFailed
		m.err = msg.err
		m.log.Warn("listing data unavailable", "document", m.listing.Document, "error", msg.err)
		render.RenderLoadError(m.surface, m.listing.Document)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch m.state {
	case stateLoading:
		// keep what was typed; it becomes the initial query once loaded
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case stateFailed:
		return m, nil
	}

	switch msg.String() {
	case "ctrl+r":
		m.input.SetValue("")
		m.binder.Reset()
		m.refresh()
		return m, nil
	case "tab":
		m.focus = (m.focus + 1) % (len(m.facets) + 1)
		return m, nil
	case "right", "left":
		if m.focus == 0 {
			break
		}
		f := m.facets[m.focus-1]
		current := m.binder.Criteria().Facets[f.Name]
		if msg.String() == "right" {
			m.binder.SetFacet(f.Name, f.Next(current))
		} else {
			m.binder.SetFacet(f.Name, f.Prev(current))
		}
		m.refresh()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != before {
		m.binder.SetQuery(q)
		m.refresh()
	}
	return m, cmd
}

// criteriaFromControls is the state typed before the listing finished
// loading.
func (m Model) criteriaFromControls() filter.Criteria {
	return filter.Criteria{FreeText: m.input.Value()}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.surface.Width = max(width-4, 20)
	m.input.Width = max(width-8, 10)
	m.viewport.Width = width
	// header, input box, facets, help
	m.viewport.Height = max(height-7, 3)
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.surface.List())
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.header()))
	b.WriteString("\n")
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.facetLine())
	b.WriteString("\n")
	if m.state == stateLoading {
		b.WriteString(helpStyle.Render("Carregando " + m.listing.Document + "..."))
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText))
	return b.String()
}

func (m Model) header() string {
	count := m.surface.Count()
	if count == "" {
		count = "…"
	}
	return fmt.Sprintf("%s · %s resultados", m.listing.Title, count)
}

func (m Model) facetLine() string {
	if len(m.facets) == 0 || m.binder == nil {
		return ""
	}
	c := m.binder.Criteria()
	parts := make([]string, len(m.facets))
	for i, f := range m.facets {
		label := facet.AllLabel
		if v := c.Facets[f.Name]; v != facet.All {
			label = v
		}
		text := fmt.Sprintf("%s: %s", f.Label, label)
		if i+1 == m.focus {
			parts[i] = focusedFacetStyle.Render(text)
		} else {
			parts[i] = facetStyle.Render(text)
		}
	}
	return strings.Join(parts, "  ")
}
