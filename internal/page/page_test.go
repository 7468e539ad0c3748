// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package page

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/labinfos/internal/facet"
	"github.com/pdiddy/labinfos/internal/listing"
	"github.com/pdiddy/labinfos/internal/render"
	"github.com/pdiddy/labinfos/pkg/types"
)

const publicationsPage = `<!doctype html>
<html><body>
<input id="pubQuery" value="redes">
<select id="pubYear"><option value="">Todos</option><option value="2023" selected>2023</option></select>
<select id="pubType"></select>
<button id="pubReset">Limpar</button>
<span id="pubCount">-</span>
<div id="pubList"><p>carregando</p></div>
<footer><span id="year"></span></footer>
</body></html>`

var linker = render.NewLinker("https://lab.example.org/")

func parse(t *testing.T, src string) *Document {
	t.Helper()
	d, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	return d
}

func rendered(t *testing.T, d *Document) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, d.Render(&b))
	return b.String()
}

func TestDiscover(t *testing.T) {
	d := parse(t, publicationsPage)

	m, ok := Discover(d, PublicationsMounts)
	require.True(t, ok)
	assert.NotNil(t, m.List)
	assert.NotNil(t, m.Count)
	assert.NotNil(t, m.Query)
	assert.NotNil(t, m.Reset)
	assert.Len(t, m.Selects, 2)
	assert.NotNil(t, m.Selects[listing.FacetYear])
	assert.NotNil(t, m.Selects[listing.FacetType])
}

func TestDiscoverMissingMarker(t *testing.T) {
	d := parse(t, publicationsPage)

	_, ok := Discover(d, TeamMounts)
	assert.False(t, ok)

	d = parse(t, `<div id="pubList"></div><span id="pubCount"></span>`)
	_, ok = Discover(d, PublicationsMounts)
	assert.False(t, ok)
}

func TestDiscoverListOnly(t *testing.T) {
	d := parse(t, `<section id="necServices"></section>`)
	m, ok := Discover(d, ServicesMounts)
	require.True(t, ok)
	assert.NotNil(t, m.List)
	assert.Nil(t, m.Count)
}

func TestReadControls(t *testing.T) {
	d := parse(t, publicationsPage)
	m, ok := Discover(d, PublicationsMounts)
	require.True(t, ok)

	c := ReadControls(m)
	assert.Equal(t, "redes", c.FreeText)
	assert.Equal(t, "2023", c.Facets[listing.FacetYear])
	assert.Equal(t, facet.All, c.Facets[listing.FacetType])
}

func TestFillSelectKeepsSelection(t *testing.T) {
	d := parse(t, publicationsPage)
	m, _ := Discover(d, PublicationsMounts)

	FillSelect(m.Selects[listing.FacetYear], facet.Options([]string{"2024", "2023"}))
	FillSelect(m.Selects[listing.FacetType], facet.Options([]string{"Artigo"}))

	out := rendered(t, d)
	assert.Contains(t, out, `<select id="pubYear"><option value="">Todos</option><option value="2024">2024</option><option value="2023" selected="">2023</option></select>`)
	assert.Contains(t, out, `<select id="pubType"><option value="">Todos</option><option value="Artigo">Artigo</option></select>`)
}

func TestWriteControls(t *testing.T) {
	d := parse(t, publicationsPage)
	m, _ := Discover(d, PublicationsMounts)
	FillSelect(m.Selects[listing.FacetType], facet.Options([]string{"Artigo", "Tese"}))

	c := ReadControls(m)
	c.FreeText = ""
	c.Facets[listing.FacetYear] = facet.All
	c.Facets[listing.FacetType] = "Tese"
	WriteControls(m, c)

	got := ReadControls(m)
	assert.Equal(t, c, got)
}

func TestHTMLSurfacePublications(t *testing.T) {
	d := parse(t, publicationsPage)
	m, _ := Discover(d, PublicationsMounts)
	s := NewHTMLSurface(m)

	cards := render.Cards([]types.Publication{
		{Title: "Redes", Year: "2023", Type: "Artigo", DOI: "10.1/x", PDF: "/papers/redes.pdf", Note: "Prêmio"},
		{},
	}, linker.Publication)
	n := render.Render(s, cards)
	assert.Equal(t, 2, n)

	out := rendered(t, d)
	assert.Contains(t, out, `<span id="pubCount">2</span>`)
	assert.NotContains(t, out, "carregando")
	assert.Equal(t, 2, strings.Count(out, `<article class="pub-item">`))
	assert.Contains(t, out, `<h3 class="pub-title">Redes</h3>`)
	assert.Contains(t, out, `<a href="https://doi.org/10.1/x" target="_blank" rel="noopener noreferrer">DOI</a>`)
	assert.Contains(t, out, `<a href="/papers/redes.pdf">PDF</a>`)
	assert.Contains(t, out, `<p class="muted" style="margin-top: 10px;">Prêmio</p>`)
	assert.Contains(t, out, `<h3 class="pub-title">[TÍTULO DA PUBLICAÇÃO]</h3>`)
	assert.Contains(t, out, `<span class="tag">Sem ano</span><span class="tag">Sem tipo</span>`)

	// a second pass replaces rather than appends
	render.Render(s, cards[:1])
	out = rendered(t, d)
	assert.Equal(t, 1, strings.Count(out, `<article class="pub-item">`))
	assert.Contains(t, out, `<span id="pubCount">1</span>`)
}

func TestHTMLSurfacePerson(t *testing.T) {
	d := parse(t, `<div id="teamGrid"></div><span id="teamCount"></span>`)
	s := &HTMLSurface{List: d.ByID("teamGrid"), Count: d.ByID("teamCount")}

	render.Render(s, []render.Card{linker.Person(types.Person{Name: "Ana", Role: "Docente", Email: "ana@example.org"})})

	out := rendered(t, d)
	assert.Contains(t, out, `<article class="person"><div class="person-top"><img class="avatar" alt="Foto de Ana" src="assets/img/team/p1.svg" loading="lazy"/>`)
	assert.Contains(t, out, `<h3 class="person-name">Ana</h3><p class="person-role">Docente</p>`)
	assert.Contains(t, out, `<p class="person-bio">[PREENCHA: mini-bio (2–4 linhas).]</p>`)
	assert.NotContains(t, out, "person-tags")
	assert.Contains(t, out, `<div class="person-links"><a href="mailto:ana@example.org" target="_blank" rel="noopener noreferrer">E-mail</a></div>`)
}

func TestHTMLSurfaceLoadError(t *testing.T) {
	d := parse(t, publicationsPage)
	m, _ := Discover(d, PublicationsMounts)

	render.RenderLoadError(NewHTMLSurface(m), "data/publications.json")

	out := rendered(t, d)
	assert.Contains(t, out, `<div id="pubList"><div class="hint"><p class="muted">Não consegui carregar <code>data/publications.json</code>. Verifique o caminho/JSON.</p></div></div>`)
	assert.Contains(t, out, `<span id="pubCount">0</span>`)
}

func TestSetYear(t *testing.T) {
	d := parse(t, publicationsPage)
	SetYear(d, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, rendered(t, d), `<span id="year">2026</span>`)
}

func TestApplySite(t *testing.T) {
	d := parse(t, `<a data-site="email" href="#">x</a>
<p data-site="email">x</p>
<span data-site="phone">(00) 0000-0000</span>
<span data-site="address">old</span>
<nav id="socialLinks"><a href="#">stale</a></nav>
<div id="heroMetrics"><b data-metric="publications"></b><b data-metric="people"></b><b data-metric="projects"></b></div>`)

	site := types.Site{
		Email: "lab@example.org",
		Social: []types.SocialLink{
			{Label: "GitHub", URL: "https://github.com/lab"},
			{URL: "/contato.html"},
			{},
		},
		Metrics: types.Metrics{Publications: "42", People: "0"},
		Fields:  map[string]types.Text{"address": "Rua A, 1"},
	}
	ApplySite(d, site, linker)

	out := rendered(t, d)
	assert.Contains(t, out, `<a data-site="email" href="mailto:lab@example.org">lab@example.org</a>`)
	assert.Contains(t, out, `<p data-site="email">lab@example.org</p>`)
	assert.Contains(t, out, `<span data-site="phone">(00) 0000-0000</span>`)
	assert.Contains(t, out, `<span data-site="address">Rua A, 1</span>`)
	assert.Contains(t, out, `<nav id="socialLinks"><a href="https://github.com/lab" target="_blank" rel="noopener noreferrer">GitHub</a><a href="/contato.html">Link</a><a href="#">Link</a></nav>`)
	assert.Contains(t, out, `<b data-metric="publications">42</b><b data-metric="people">—</b><b data-metric="projects">—</b>`)
}

func TestApplySiteEmailPlaceholder(t *testing.T) {
	d := parse(t, `<a data-site="email" href="mailto:old@example.org">old</a>`)
	ApplySite(d, types.Site{}, linker)
	assert.Contains(t, rendered(t, d), `<a data-site="email" href="#">[email@exemplo.org]</a>`)
}

func TestApplyNEC(t *testing.T) {
	d := parse(t, `<a data-nec="email" href="#"></a>
<a data-nec="formUrl" href="#"></a>
<span data-nec="hours">seg-sex</span>
<div id="necServices"><p>carregando</p></div>
<div id="necHowWeWork"></div>`)

	nec := types.NEC{
		FormURL:   "https://forms.example.com/nec",
		Services:  []types.Service{{Title: "Consultoria", Description: "Apoio estatístico.", Note: "Gratuito"}, {}},
		HowWeWork: types.TextList{"Triagem.", "Reunião."},
	}
	ApplyNEC(d, nec, linker)

	out := rendered(t, d)
	assert.Contains(t, out, `<a data-nec="email" href="#">[nec@exemplo.org]</a>`)
	assert.Contains(t, out, `<a data-nec="formUrl" href="https://forms.example.com/nec" target="_blank" rel="noopener noreferrer">https://forms.example.com/nec</a>`)
	assert.Contains(t, out, `<span data-nec="hours">seg-sex</span>`)
	assert.Contains(t, out, `<article class="card"><h3>Consultoria</h3><p>Apoio estatístico.</p><p class="card-meta">Gratuito</p></article>`)
	assert.Contains(t, out, `<article class="card"><h3>[SERVIÇO]</h3><p>[PREENCHA: descrição do serviço.]</p><p class="card-meta"></p></article>`)
	assert.NotContains(t, out, "carregando")
	assert.Contains(t, out, `<div id="necHowWeWork"><p>Triagem.</p><p>Reunião.</p></div>`)
}

func TestApplyNECFormPlaceholder(t *testing.T) {
	d := parse(t, `<a data-nec="formUrl" href="https://old.example.com" target="_blank">x</a>`)
	ApplyNEC(d, types.NEC{}, linker)
	assert.Contains(t, rendered(t, d), `>[link do formulário]</a>`)
}
