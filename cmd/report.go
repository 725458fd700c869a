// Copyright (c) 2025 Tunestat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"tunestat/cli/internal/render"
	"tunestat/cli/internal/report"
)

var (
	reportCountry string
	reportTop     int
	reportFormat  string
	reportNoChart bool
)

// reportCmd runs one of the canned analytical reports.
var reportCmd = &cobra.Command{
	Use:   "report <name>",
	Short: "Run a canned sales report",
	Long: `The report command runs one of the built-in analytical reports against
the music-store database and renders the result as a table plus a horizontal
bar chart.

Available reports:
  genres     tracks sold by genre within one customer country (--country)
  employees  total invoice value per support rep
  countries  per-country sales with single-customer countries bucketed as Other`,
	Example: `  tunestat report genres
  tunestat report genres --country Canada --top 5
  tunestat report countries --format json`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: report.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, ok := report.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown report %q (available: %s)", args[0], strings.Join(report.Names(), ", "))
		}

		s, resolved, err := openStore()
		if err != nil {
			return err
		}

		opts := report.Options{Country: reportCountry, Top: reportTop}

		stopSpinner := func() {}
		if reportFormat == render.FormatTable {
			stopSpinner = startInlineSpinner(os.Stderr, "Running report...", defaultSpinnerFrames, 120*time.Millisecond)
		}
		res, err := report.Run(context.Background(), s, def, opts)
		stopSpinner()
		if err != nil {
			return err
		}

		if reportFormat != render.FormatTable {
			return render.To(os.Stdout, reportFormat, res)
		}

		title := def.Title
		if def.Name == "genres" {
			country := reportCountry
			if strings.TrimSpace(country) == "" {
				country = "USA"
			}
			title = fmt.Sprintf("%s (%s)", title, country)
		}
		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint(title))
		pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint("database: " + resolved.Path))
		pterm.Println()

		if err := render.Table(res); err != nil {
			return err
		}
		if !reportNoChart && len(res.Rows) > 0 {
			pterm.Println()
			if err := render.BarChart(res, def.LabelColumn, def.ValueColumn); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportCountry, "country", "", "Market for the genres report (default USA)")
	reportCmd.Flags().IntVar(&reportTop, "top", 0, "Cap the number of result rows (0 = all)")
	reportCmd.Flags().StringVar(&reportFormat, "format", render.FormatTable, "Output format: table, json, or csv")
	reportCmd.Flags().BoolVar(&reportNoChart, "no-chart", false, "Skip the bar chart")
}
