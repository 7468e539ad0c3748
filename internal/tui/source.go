// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"context"

	"github.com/pdiddy/labinfos/internal/binder"
	"github.com/pdiddy/labinfos/internal/facet"
	"github.com/pdiddy/labinfos/internal/listing"
	"github.com/pdiddy/labinfos/internal/render"
	"github.com/pdiddy/labinfos/internal/source"
	"github.com/pdiddy/labinfos/internal/textnorm"
	"github.com/pdiddy/labinfos/pkg/types"
)

// Listing is what the terminal program browses: a titled collection that
// loads once and binds itself to a surface.
type Listing struct {
	Title    string
	Document string

	// Load fetches the collection and returns a binder wired to s. The
	// binder has not run yet.
	Load func(ctx context.Context, s render.Surface) (*binder.Binder, []facet.Facet, error)
}

// NewListing builds a Listing over any record type.
func NewListing[R any](
	title, document string,
	load func(ctx context.Context) ([]R, error),
	build func([]R) *listing.Pipeline[R],
	toCard func(R) render.Card,
) Listing {
	return Listing{
		Title:    title,
		Document: document,
		Load: func(ctx context.Context, s render.Surface) (*binder.Binder, []facet.Facet, error) {
			records, err := load(ctx)
			if err != nil {
				return nil, nil, err
			}
			p := build(records)
			return binder.Bind(p, s, toCard), p.Facets(), nil
		},
	}
}

// Publications is the publications listing loaded from location.
func Publications(f source.Fetcher, location string, c *textnorm.Collator, l render.Linker) Listing {
	return NewListing("Publicações", location,
		func(ctx context.Context) ([]types.Publication, error) {
			return source.LoadPublications(ctx, f, location)
		},
		func(pubs []types.Publication) *listing.Pipeline[types.Publication] {
			return listing.NewPublications(pubs, c)
		},
		l.Publication,
	)
}

// Team is the team listing loaded from location.
func Team(f source.Fetcher, location string, c *textnorm.Collator, l render.Linker) Listing {
	return NewListing("Equipe", location,
		func(ctx context.Context) ([]types.Person, error) {
			return source.LoadTeam(ctx, f, location)
		},
		func(people []types.Person) *listing.Pipeline[types.Person] {
			return listing.NewTeam(people, c)
		},
		l.Person,
	)
}
