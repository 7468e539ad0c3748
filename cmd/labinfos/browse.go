// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdiddy/labinfos/internal/render"
	"github.com/pdiddy/labinfos/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse publications|team",
	Short: "Browse a listing interactively in the terminal",
	Long: `Browse opens a full-screen listing. Typing searches titles, names,
keywords and the rest of each record, ignoring case and accents. Tab picks a
filter, left/right change its value, ctrl+r clears everything, esc quits.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"publications", "team"},
	RunE:      runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	col, err := newCollator(cfg)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, true)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()
	log.Debug("collation", "locale", col.Locale())

	f := newFetcher(cfg)
	linker := render.NewLinker(cfg.Origin)

	var l tui.Listing
	switch args[0] {
	case "publications":
		l = tui.Publications(f, cfg.Data.Publications, col, linker)
	case "team":
		l = tui.Team(f, cfg.Data.Team, col, linker)
	}

	p := tea.NewProgram(tui.New(cmd.Context(), l, log), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}
