// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the labinfos CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the labinfos CLI.
var rootCmd = &cobra.Command{
	Use:   "labinfos",
	Short: "Filterable listings of a research lab's publications, team and services",
	Long: `labinfos loads the lab's data documents (publications, team, services,
site contacts) from local files or URLs and presents them as filterable
listings: interactively in the terminal, rendered into a static HTML page,
or exported as a table, JSON or CSL-YAML.

Free-text search ignores case and accents; facet filters match exactly;
results are ordered with pt-BR collation.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./labinfos.yaml or ~/.config/labinfos/labinfos.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory (or base URL) holding the data documents")
	rootCmd.PersistentFlags().String("locale", "", "collation locale (default pt-BR)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file")
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: reading .env:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("labinfos")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "labinfos"))
		}
	}

	setDefaults(viper.GetViper())
	viper.SetEnvPrefix("LABINFOS")
	viper.SetEnvKeyReplacer(envKeys)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
