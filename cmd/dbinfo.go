// Copyright (c) 2025 Tunestat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"tunestat/cli/internal/render"
)

// dbinfoCmd shows which database file is in use and what it contains.
var dbinfoCmd = &cobra.Command{
	Use:   "dbinfo",
	Short: "Show the resolved database file and its tables",
	Long: `The dbinfo command displays the database file tunestat has resolved
(along with where the path came from: flag, environment, config, or default)
and lists the tables it contains with estimated row counts.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		s, resolved, err := openStore()
		if err != nil {
			return err
		}

		info, err := os.Stat(resolved.Path)
		if err != nil {
			return err
		}

		body := fmt.Sprintf("%s\nsource: %s\nsize:   %s",
			resolved.Path, resolved.Source, formatBytes(info.Size()))
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Database")).
			WithPadding(1).
			Println(body)
		pterm.Println()

		res, err := s.Query(context.Background(),
			`SELECT table_name, column_count, estimated_size AS estimated_rows
			 FROM duckdb_tables()
			 ORDER BY table_name`)
		if err != nil {
			return err
		}
		if len(res.Rows) == 0 {
			pterm.Println("No tables found.")
			return nil
		}
		return render.Table(res)
	},
}

func init() {
	rootCmd.AddCommand(dbinfoCmd)
}

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
