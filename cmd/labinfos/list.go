// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/labinfos/internal/export"
	"github.com/pdiddy/labinfos/internal/filter"
	"github.com/pdiddy/labinfos/internal/listing"
	"github.com/pdiddy/labinfos/internal/render"
	"github.com/pdiddy/labinfos/internal/source"
	"github.com/pdiddy/labinfos/internal/textnorm"
	"github.com/pdiddy/labinfos/pkg/types"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSL   = "csl"
)

var listCmd = &cobra.Command{
	Use:   "list publications|team|services",
	Short: "Print a filtered listing",
	Long: `List prints the filtered, ordered view of a listing. --query searches
every text field ignoring case and accents; --year, --type and --role match
exactly. Publications can also be exported as CSL-YAML for Pandoc and
reference managers.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"publications", "team", "services"},
	RunE:      runList,
}

func init() {
	listCmd.Flags().StringP("query", "q", "", "free-text search")
	listCmd.Flags().String("year", "", "publication year")
	listCmd.Flags().String("type", "", "publication type")
	listCmd.Flags().String("role", "", "team member role")
	listCmd.Flags().StringP("format", "f", formatTable, "output format: table, json or csl")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case formatTable, formatJSON:
	case formatCSL:
		if args[0] != "publications" {
			return fmt.Errorf("csl output is only available for publications")
		}
	default:
		return fmt.Errorf("unknown format %q (want table, json or csl)", format)
	}

	col, err := newCollator(cfg)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, false)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()
	log.Debug("collation", "locale", col.Locale())

	query, _ := cmd.Flags().GetString("query")
	year, _ := cmd.Flags().GetString("year")
	typ, _ := cmd.Flags().GetString("type")
	role, _ := cmd.Flags().GetString("role")

	l := lister{
		fetcher:  newFetcher(cfg),
		data:     cfg.Data,
		collator: col,
		linker:   render.NewLinker(cfg.Origin),
		format:   format,
		w:        cmd.OutOrStdout(),
	}

	switch args[0] {
	case "publications":
		err = l.publications(cmd, filter.Criteria{
			FreeText: query,
			Facets:   map[string]string{listing.FacetYear: year, listing.FacetType: typ},
		})
	case "team":
		err = l.team(cmd, filter.Criteria{
			FreeText: query,
			Facets:   map[string]string{listing.FacetRole: role},
		})
	case "services":
		err = l.services(cmd)
	}
	if err != nil {
		log.Warn("listing failed", "listing", args[0], "error", err)
	}
	return err
}

type lister struct {
	fetcher  source.Fetcher
	data     types.DataConfig
	collator *textnorm.Collator
	linker   render.Linker
	format   string
	w        io.Writer
}

func (l lister) publications(cmd *cobra.Command, c filter.Criteria) error {
	pubs, err := source.LoadPublications(cmd.Context(), l.fetcher, l.data.Publications)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), render.LoadErrorMessage(l.data.Publications))
		return err
	}
	view := listing.NewPublications(pubs, l.collator).Apply(c)
	switch l.format {
	case formatJSON:
		return export.JSON(l.w, view)
	case formatCSL:
		return export.CSL(l.w, view)
	}
	export.Table(l.w, render.Cards(view, l.linker.Publication))
	return nil
}

func (l lister) team(cmd *cobra.Command, c filter.Criteria) error {
	team, err := source.LoadTeam(cmd.Context(), l.fetcher, l.data.Team)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), render.LoadErrorMessage(l.data.Team))
		return err
	}
	view := listing.NewTeam(team, l.collator).Apply(c)
	if l.format == formatJSON {
		return export.JSON(l.w, view)
	}
	export.Table(l.w, render.Cards(view, l.linker.Person))
	return nil
}

func (l lister) services(cmd *cobra.Command) error {
	nec, err := source.LoadNEC(cmd.Context(), l.fetcher, l.data.NEC)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), render.LoadErrorMessage(l.data.NEC))
		return err
	}
	view := listing.Services(nec)
	if l.format == formatJSON {
		return export.JSON(l.w, view)
	}
	export.Table(l.w, render.Cards(view, render.Service))
	return nil
}
