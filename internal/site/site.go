// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site fills a static page with the lab's data documents.
//
// Each listing is attached only when the page carries its mount points. A
// listing whose document fails to load shows the load-failure message and a
// zero counter; the rest of the page is still filled. Failures of the shared
// site and services documents leave the page as authored.
package site

import (
	"context"
	"time"

	"github.com/pdiddy/labinfos/internal/binder"
	"github.com/pdiddy/labinfos/internal/facet"
	"github.com/pdiddy/labinfos/internal/listing"
	"github.com/pdiddy/labinfos/internal/logging"
	"github.com/pdiddy/labinfos/internal/page"
	"github.com/pdiddy/labinfos/internal/render"
	"github.com/pdiddy/labinfos/internal/source"
	"github.com/pdiddy/labinfos/internal/textnorm"
	"github.com/pdiddy/labinfos/pkg/types"
)

// Filler renders the listings of one page.
type Filler struct {
	Fetcher  source.Fetcher
	Data     types.DataConfig
	Linker   render.Linker
	Collator *textnorm.Collator
	Log      *logging.Logger

	// Now stamps the footer year; nil means time.Now.
	Now func() time.Time
}

// Report tells which parts of the page were filled.
type Report struct {
	Site         bool
	Publications Result
	Team         Result
	Services     Result
}

// Result is the outcome of one listing.
type Result struct {
	// Mounted is set when the page has the listing's mount points.
	Mounted bool
	// Shown is the number of rendered cards.
	Shown int
	// Err is the load failure, if any.
	Err error
}

// Fill loads the documents the page needs and renders them into d.
func (f *Filler) Fill(ctx context.Context, d *page.Document) Report {
	var r Report
	page.SetYear(d, f.now())

	if s, err := source.LoadSite(ctx, f.Fetcher, f.Data.Site); err != nil {
		f.log().Debug("site data unavailable", "document", f.Data.Site, "error", err)
	} else {
		page.ApplySite(d, s, f.Linker)
		r.Site = true
	}

	if m, ok := page.Discover(d, page.PublicationsMounts); ok {
		pubs, err := source.LoadPublications(ctx, f.Fetcher, f.Data.Publications)
		r.Publications = f.mount(m, f.Data.Publications, err, func(s render.Surface) *binder.Binder {
			p := listing.NewPublications(pubs, f.Collator)
			fillSelects(m, p.Facets())
			return binder.Bind(p, s, f.Linker.Publication)
		})
	}

	if m, ok := page.Discover(d, page.TeamMounts); ok {
		team, err := source.LoadTeam(ctx, f.Fetcher, f.Data.Team)
		r.Team = f.mount(m, f.Data.Team, err, func(s render.Surface) *binder.Binder {
			p := listing.NewTeam(team, f.Collator)
			fillSelects(m, p.Facets())
			return binder.Bind(p, s, f.Linker.Person)
		})
	}

	if needsNEC(d) {
		r.Services.Mounted = d.ByID(page.ServicesMounts.List) != nil
		nec, err := source.LoadNEC(ctx, f.Fetcher, f.Data.NEC)
		if err != nil {
			f.log().Warn("services data unavailable", "document", f.Data.NEC, "error", err)
			r.Services.Err = err
		} else {
			page.ApplyNEC(d, nec, f.Linker)
			r.Services.Shown = len(listing.Services(nec))
		}
	}
	return r
}

// mount renders one listing, or its load failure, into m. The initial
// criteria are whatever the page's controls already express.
func (f *Filler) mount(m page.Mounts, document string, err error, bind func(render.Surface) *binder.Binder) Result {
	s := &countingSurface{Surface: page.NewHTMLSurface(m)}
	if err != nil {
		f.log().Warn("listing data unavailable", "document", document, "error", err)
		render.RenderLoadError(s, document)
		return Result{Mounted: true, Err: err}
	}
	b := bind(s)
	b.Load(page.ReadControls(m))
	page.WriteControls(m, b.Criteria())
	f.log().Info("listing rendered", "document", document, "shown", s.count)
	return Result{Mounted: true, Shown: s.count}
}

func fillSelects(m page.Mounts, facets []facet.Facet) {
	for _, fc := range facets {
		page.FillSelect(m.Selects[fc.Name], fc.Options())
	}
}

// needsNEC reports whether d shows any services data.
func needsNEC(d *page.Document) bool {
	return d.ByID(page.ServicesMounts.List) != nil || len(d.ByAttr("data-nec")) > 0
}

func (f *Filler) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f *Filler) log() *logging.Logger {
	if f.Log != nil {
		return f.Log
	}
	return logging.Nop()
}

// countingSurface remembers the last count written to the wrapped surface.
type countingSurface struct {
	render.Surface
	count int
}

func (s *countingSurface) SetCount(n int) {
	s.count = n
	s.Surface.SetCount(n)
}
