// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/labinfos/internal/logging"
	"github.com/pdiddy/labinfos/internal/source"
	"github.com/pdiddy/labinfos/internal/textnorm"
	"github.com/pdiddy/labinfos/pkg/types"
)

const defaultTimeout = 30 * time.Second

// envKeys maps nested keys to environment names: data.team reads
// LABINFOS_DATA_TEAM.
var envKeys = strings.NewReplacer(".", "_")

func setDefaults(v *viper.Viper) {
	d := types.DefaultData()
	v.SetDefault("data.publications", d.Publications)
	v.SetDefault("data.team", d.Team)
	v.SetDefault("data.nec", d.NEC)
	v.SetDefault("data.site", d.Site)
	v.SetDefault("locale", types.DefaultLocale)
	v.SetDefault("origin", types.DefaultOrigin)
	v.SetDefault("http.timeout", defaultTimeout)
	v.SetDefault("http.user_agent", types.DefaultUserAgent)
	v.SetDefault("log.mode", "dev")
	v.SetDefault("log.file", "")
}

// loadConfig resolves the listing settings from config, environment and
// the persistent flags, in increasing precedence.
func loadConfig(cmd *cobra.Command) types.ListingConfig {
	cfg := types.ListingConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		Data: types.DataConfig{
			Publications: viper.GetString("data.publications"),
			Team:         viper.GetString("data.team"),
			NEC:          viper.GetString("data.nec"),
			Site:         viper.GetString("data.site"),
		},
		Locale: viper.GetString("locale"),
		Origin: viper.GetString("origin"),
	}

	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		d := types.DefaultData()
		cfg.Data = types.DataConfig{
			Publications: dataPath(dir, d.Publications),
			Team:         dataPath(dir, d.Team),
			NEC:          dataPath(dir, d.NEC),
			Site:         dataPath(dir, d.Site),
		}
	}
	if locale, _ := cmd.Flags().GetString("locale"); locale != "" {
		cfg.Locale = locale
	}
	return cfg
}

// dataPath places the default document name under dir, which may be a
// local directory or a base URL.
func dataPath(dir, document string) string {
	name := path.Base(document)
	if strings.HasPrefix(dir, "http://") || strings.HasPrefix(dir, "https://") {
		return strings.TrimSuffix(dir, "/") + "/" + name
	}
	return filepath.Join(dir, name)
}

func newFetcher(cfg types.ListingConfig) *source.Client {
	return source.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg.UserAgent)
}

func newCollator(cfg types.ListingConfig) (*textnorm.Collator, error) {
	return textnorm.NewCollator(cfg.Locale)
}

// newLogger builds the command logger. quiet commands (the terminal UI,
// which owns the screen) log nowhere unless a log file is configured.
func newLogger(cmd *cobra.Command, quiet bool) (*logging.Logger, error) {
	file := viper.GetString("log.file")
	if f, _ := cmd.Flags().GetString("log-file"); f != "" {
		file = f
	}
	if file == "" && quiet {
		return logging.Nop(), nil
	}
	return logging.New(viper.GetString("log.mode"), file)
}
