// Copyright (c) 2025 Tunestat
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for tunestat.
// It implements subcommands for running ad-hoc queries, mutating statements,
// and canned sales reports against a file-backed music-store database, using
// the Cobra CLI framework with pterm for terminal rendering.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tunestat/cli/internal/config"
	"tunestat/cli/internal/dbpath"
	"tunestat/cli/internal/logging"
	"tunestat/cli/internal/store"
)

var (
	showVersion bool
	dbFlag      string
	verboseFlag bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "tunestat",
	Short:         "Analytical reports for a music-store database file",
	Long: `Tunestat runs analytical SQL against a file-backed music-store database
and renders the results as tables, bar charts, JSON, or CSV.

The database file is resolved from --db, the TUNESTAT_DB environment
variable, or the config file, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("tunestat %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the database file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
}

// openStore loads configuration, configures logging, and resolves and
// validates the database path. Shared by every subcommand that touches
// the database.
func openStore() (*store.Store, dbpath.Resolved, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, dbpath.Resolved{}, err
	}

	level := cfg.LogLevel
	if verboseFlag {
		level = "debug"
	}
	logging.Init(level, os.Stderr)

	resolved := dbpath.Resolve(dbFlag, cfg.Database.Path, "chinook.duckdb")
	logging.Debug().Str("path", resolved.Path).Str("source", string(resolved.Source)).Msg("database path resolved")

	if err := dbpath.Validate(resolved); err != nil {
		return nil, resolved, err
	}
	return store.New(resolved.Path), resolved, nil
}
