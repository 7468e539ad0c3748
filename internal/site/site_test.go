// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/labinfos/internal/page"
	"github.com/pdiddy/labinfos/internal/render"
	"github.com/pdiddy/labinfos/internal/source"
	"github.com/pdiddy/labinfos/internal/textnorm"
	"github.com/pdiddy/labinfos/pkg/types"
)

const publicationsPage = `<!doctype html><html><body>
<a data-site="email" href="#"></a>
<input id="pubQuery">
<select id="pubYear"></select>
<select id="pubType"></select>
<button id="pubReset">Limpar</button>
<span id="pubCount"></span>
<div id="pubList"></div>
<span id="year"></span>
</body></html>`

var docs = map[string]string{
	"data/site.json": `{"email": "lab@example.org"}`,
	"data/publications.json": `[
		{"title": "B", "year": 2021, "type": "Artigo"},
		{"title": "A", "year": 2023, "type": "Tese"},
		{"title": "C", "year": "2023", "type": "Artigo"}
	]`,
	"data/team.json": `[{"name": "Ana", "role": "Docente"}]`,
	"data/nec.json":  `{"services": [{"title": "Consultoria"}]}`,
}

func fetcher(available map[string]string) source.Fetcher {
	return source.FetcherFunc(func(_ context.Context, location string) ([]byte, error) {
		data, ok := available[location]
		if !ok {
			return nil, os.ErrNotExist
		}
		return []byte(data), nil
	})
}

func newFiller(available map[string]string) *Filler {
	return &Filler{
		Fetcher:  fetcher(available),
		Data:     types.DefaultData(),
		Linker:   render.NewLinker("https://lab.example.org/"),
		Collator: textnorm.MustCollator(textnorm.DefaultLocale),
		Now:      func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) },
	}
}

func fill(t *testing.T, f *Filler, src string) (Report, string) {
	t.Helper()
	d, err := page.Parse(strings.NewReader(src))
	require.NoError(t, err)
	r := f.Fill(context.Background(), d)
	var b strings.Builder
	require.NoError(t, d.Render(&b))
	return r, b.String()
}

func TestFillPublications(t *testing.T) {
	r, out := fill(t, newFiller(docs), publicationsPage)

	assert.True(t, r.Site)
	assert.True(t, r.Publications.Mounted)
	assert.NoError(t, r.Publications.Err)
	assert.Equal(t, 3, r.Publications.Shown)
	assert.False(t, r.Team.Mounted)
	assert.False(t, r.Services.Mounted)

	assert.Contains(t, out, `<span id="pubCount">3</span>`)
	assert.Contains(t, out, `<span id="year">2026</span>`)
	assert.Contains(t, out, `href="mailto:lab@example.org">lab@example.org</a>`)
	assert.Contains(t, out, `<select id="pubYear"><option value="">Todos</option><option value="2023">2023</option><option value="2021">2021</option></select>`)
	assert.Contains(t, out, `<select id="pubType"><option value="">Todos</option><option value="Artigo">Artigo</option><option value="Tese">Tese</option></select>`)

	a := strings.Index(out, `<h3 class="pub-title">A</h3>`)
	b := strings.Index(out, `<h3 class="pub-title">B</h3>`)
	c := strings.Index(out, `<h3 class="pub-title">C</h3>`)
	require.True(t, a >= 0 && b >= 0 && c >= 0)
	assert.Less(t, a, c)
	assert.Less(t, c, b)
}

func TestFillHonorsPresetControls(t *testing.T) {
	src := strings.Replace(publicationsPage, `<input id="pubQuery">`, `<input id="pubQuery" value="c">`, 1)
	r, out := fill(t, newFiller(docs), src)

	assert.Equal(t, 1, r.Publications.Shown)
	assert.Contains(t, out, `<span id="pubCount">1</span>`)
	assert.NotContains(t, out, `<h3 class="pub-title">A</h3>`)
}

func TestFillKeepsControlStateInOutput(t *testing.T) {
	src := strings.NewReplacer(
		`<input id="pubQuery">`, `<input id="pubQuery" value="a">`,
		`<select id="pubType"></select>`, `<select id="pubType"><option value="Tese" selected>Tese</option></select>`,
	).Replace(publicationsPage)
	r, out := fill(t, newFiller(docs), src)

	assert.Equal(t, 1, r.Publications.Shown)
	assert.Contains(t, out, `<h3 class="pub-title">A</h3>`)
	assert.Contains(t, out, `<option value="Tese" selected="">Tese</option>`)
	assert.Contains(t, out, `<option value="Artigo">Artigo</option>`)
	assert.Contains(t, out, `value="a"`)
}

func TestFillLoadFailure(t *testing.T) {
	available := map[string]string{"data/site.json": docs["data/site.json"]}

	var r Report
	var out string
	require.NotPanics(t, func() { r, out = fill(t, newFiller(available), publicationsPage) })

	assert.True(t, r.Publications.Mounted)
	assert.True(t, errors.Is(r.Publications.Err, source.ErrLoad))
	assert.Equal(t, 0, r.Publications.Shown)
	assert.Contains(t, out, `<span id="pubCount">0</span>`)
	assert.Contains(t, out, `Não consegui carregar <code>data/publications.json</code>. Verifique o caminho/JSON.`)
}

func TestFillWithoutMountsSkips(t *testing.T) {
	r, out := fill(t, newFiller(docs), `<main><p>Sobre</p></main>`)

	assert.False(t, r.Publications.Mounted)
	assert.False(t, r.Team.Mounted)
	assert.False(t, r.Services.Mounted)
	assert.Contains(t, out, `<p>Sobre</p>`)
}

func TestFillSiteFailureIsSilent(t *testing.T) {
	available := map[string]string{"data/team.json": docs["data/team.json"]}
	r, out := fill(t, newFiller(available), `<a data-site="email" href="#">contato</a>
<input id="teamQuery"><select id="teamRole"></select><button id="teamReset"></button>
<span id="teamCount"></span><div id="teamGrid"></div>`)

	assert.False(t, r.Site)
	assert.Equal(t, 1, r.Team.Shown)
	assert.Contains(t, out, `<a data-site="email" href="#">contato</a>`)
	assert.Contains(t, out, `<h3 class="person-name">Ana</h3>`)
	assert.Contains(t, out, `<option value="Docente">Docente</option>`)
}

func TestFillServices(t *testing.T) {
	r, out := fill(t, newFiller(docs), `<section id="necServices"></section>`)

	assert.True(t, r.Services.Mounted)
	assert.Equal(t, 1, r.Services.Shown)
	assert.Contains(t, out, `<article class="card"><h3>Consultoria</h3>`)
}
