// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/labinfos/internal/listing"
	"github.com/pdiddy/labinfos/internal/render"
	"github.com/pdiddy/labinfos/internal/source"
	"github.com/pdiddy/labinfos/internal/textnorm"
)

const teamJSON = `[
	{"name": "Bruno", "role": "Docente"},
	{"name": "Ana", "role": "Discente", "bio": "Visão computacional"},
	{"name": "Érica", "role": "Docente"}
]`

func fetcher(data string, err error) source.Fetcher {
	return source.FetcherFunc(func(context.Context, string) ([]byte, error) {
		if err != nil {
			return nil, err
		}
		return []byte(data), nil
	})
}

func newModel(f source.Fetcher) Model {
	l := Team(f, "data/team.json", textnorm.MustCollator(textnorm.DefaultLocale), render.Linker{})
	return New(context.Background(), l, nil)
}

// step feeds msg to m and returns the updated model.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func loaded(t *testing.T) Model {
	t.Helper()
	m := newModel(fetcher(teamJSON, nil))
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return step(t, m, m.load()())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoadRendersAll(t *testing.T) {
	m := loaded(t)

	assert.Equal(t, stateReady, m.state)
	assert.Equal(t, "3", m.surface.Count())
	assert.Contains(t, m.View(), "Equipe · 3 resultados")
	assert.Contains(t, m.View(), "Função: Todos")
	assert.Less(t, strings.Index(m.surface.List(), "Ana"), strings.Index(m.surface.List(), "Bruno"))
}

func TestTypingFilters(t *testing.T) {
	m := loaded(t)

	m = step(t, m, runes("v"))
	m = step(t, m, runes("i"))
	m = step(t, m, runes("s"))

	assert.Equal(t, "vis", m.input.Value())
	assert.Equal(t, "1", m.surface.Count())
	assert.Contains(t, m.surface.List(), "Ana")
	assert.NotContains(t, m.surface.List(), "Bruno")
}

func TestFacetCycle(t *testing.T) {
	m := loaded(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Discente", m.binder.Criteria().Facets[listing.FacetRole])
	assert.Equal(t, "1", m.surface.Count())

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Docente", m.binder.Criteria().Facets[listing.FacetRole])
	assert.Equal(t, "2", m.surface.Count())
	assert.Contains(t, m.View(), "Função: Docente")

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "", m.binder.Criteria().Facets[listing.FacetRole])
	assert.Equal(t, "3", m.surface.Count())
}

func TestArrowsMoveCursorInSearchBox(t *testing.T) {
	m := loaded(t)

	m = step(t, m, runes("ab"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = step(t, m, runes("X"))

	assert.Equal(t, "aXb", m.input.Value())
	assert.Equal(t, "", m.binder.Criteria().Facets[listing.FacetRole])
	assert.Equal(t, "aXb", m.binder.Criteria().FreeText)
}

func TestTypingWithFacetFocused(t *testing.T) {
	m := loaded(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = step(t, m, runes("bru"))
	assert.Equal(t, "bru", m.input.Value())
	assert.Equal(t, "1", m.surface.Count())
}

func TestReset(t *testing.T) {
	m := loaded(t)
	m = step(t, m, runes("zzz"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "0", m.surface.Count())

	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, "3", m.surface.Count())
	assert.Equal(t, "", m.binder.Criteria().Facets[listing.FacetRole])
}

func TestLoadFailure(t *testing.T) {
	m := newModel(fetcher("", errors.New("connection refused")))
	m = step(t, m, m.load()())

	assert.Equal(t, stateFailed, m.state)
	assert.ErrorIs(t, m.err, source.ErrLoad)
	assert.Equal(t, "0", m.surface.Count())
	assert.Contains(t, m.surface.List(), "Não consegui carregar data/team.json. Verifique o caminho/JSON.")

	// controls are inert after a failed load
	assert.NotPanics(t, func() {
		m = step(t, m, runes("a"))
		m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	})
}

func TestQuit(t *testing.T) {
	m := loaded(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTypedBeforeLoad(t *testing.T) {
	m := newModel(fetcher(teamJSON, nil))
	m.input.SetValue("érica")
	m = step(t, m, m.load()())
	assert.Equal(t, "1", m.surface.Count())
}

func TestPublicationsListing(t *testing.T) {
	f := fetcher(`[{"title": "A", "year": 2020, "type": "Artigo"}]`, nil)
	l := Publications(f, "data/publications.json", textnorm.MustCollator(""), render.Linker{})
	m := New(context.Background(), l, nil)
	m = step(t, m, m.load()())

	assert.Equal(t, "1", m.surface.Count())
	assert.Contains(t, m.View(), "Ano: Todos")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 2, m.focus)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus, "back to the search box")
}

func TestTypingWhileLoading(t *testing.T) {
	m := newModel(fetcher(teamJSON, nil))
	m = step(t, m, runes("bru"))
	assert.Equal(t, "bru", m.input.Value())
	assert.Empty(t, m.surface.Count())

	m = step(t, m, m.load()())
	assert.Equal(t, "1", m.surface.Count())
}
