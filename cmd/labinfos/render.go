// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/labinfos/internal/page"
	"github.com/pdiddy/labinfos/internal/render"
	"github.com/pdiddy/labinfos/internal/site"
	"github.com/pdiddy/labinfos/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Fill a static HTML page with the lab's listings",
	Long: `Render reads an HTML page, loads the data documents the page has mount
points for (pubList, teamGrid, necServices and their controls), renders the
listings into it and writes the page out. Preset control values in the page
(the search box value, selected options) are honored.

A listing whose document cannot be loaded shows a load-failure note and a
zero counter; pages without a listing's mount points are left untouched.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("input", "i", "", "HTML page to fill (required)")
	renderCmd.Flags().StringP("output", "o", "-", `output path ("-" for stdout)`)
	renderCmd.Flags().String("origin", "", "origin the page is served from (default http://localhost)")
	_ = renderCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := types.PageConfig{ListingConfig: loadConfig(cmd)}
	cfg.Input, _ = cmd.Flags().GetString("input")
	cfg.Output, _ = cmd.Flags().GetString("output")
	if origin, _ := cmd.Flags().GetString("origin"); origin != "" {
		cfg.Origin = origin
	}

	col, err := newCollator(cfg.ListingConfig)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, false)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()
	log.Debug("collation", "locale", col.Locale())

	in, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("opening page: %w", err)
	}
	doc, err := page.Parse(in)
	in.Close()
	if err != nil {
		return err
	}

	filler := &site.Filler{
		Fetcher:  newFetcher(cfg.ListingConfig),
		Data:     cfg.Data,
		Linker:   render.NewLinker(cfg.Origin),
		Collator: col,
		Log:      log.With("page", cfg.Input),
	}
	report := filler.Fill(cmd.Context(), doc)
	printReport(cmd.ErrOrStderr(), report)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	if cfg.Output == "-" || cfg.Output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	return writeFile(cfg.Output, &buf)
}

func printReport(w io.Writer, r site.Report) {
	line := func(name string, res site.Result) {
		switch {
		case !res.Mounted:
			return
		case res.Err != nil:
			fmt.Fprintf(w, "  %s: load failed: %v\n", name, res.Err)
		default:
			fmt.Fprintf(w, "  %s: %d shown\n", name, res.Shown)
		}
	}
	line("publications", r.Publications)
	line("team", r.Team)
	line("services", r.Services)
}

// writeFile writes r to destPath through a temporary file in the same
// directory so readers never see a partial page.
func writeFile(destPath string, r io.Reader) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".render-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, r)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing page: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
