// Copyright (c) 2025 Tunestat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"tunestat/cli/internal/render"
	"tunestat/cli/internal/store"
)

var (
	queryFormat string
	queryChart  bool
	queryLabel  string
	queryValue  string
	queryLimit  int
)

// queryCmd runs an ad-hoc read query against the database file. The
// connection is opened read-only and scoped to this single invocation, so
// mutating SQL is rejected by the engine.
var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Run a read query and render the result",
	Long: `The query command executes a single read-only SQL query against the
database file and renders all returned rows.

The connection is opened in read-only mode and closed as soon as the result
is materialized; statements that modify the database are rejected by the
engine. Use "tunestat exec" for mutating statements.

With --chart the result is drawn as a horizontal bar chart instead of a
table; by default the first column supplies labels and the second values.`,
	Example: `  tunestat query "SELECT name FROM genre ORDER BY name"
  tunestat query --format csv "SELECT * FROM invoice LIMIT 10" > invoices.csv
  tunestat query --chart "SELECT country, count(*) FROM customer GROUP BY country"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore()
		if err != nil {
			return err
		}

		stopSpinner := func() {}
		if queryFormat == render.FormatTable && !queryChart {
			stopSpinner = startInlineSpinner(os.Stderr, "Running query...", defaultSpinnerFrames, 120*time.Millisecond)
		}
		res, err := s.Query(context.Background(), args[0])
		stopSpinner()
		if err != nil {
			return err
		}

		if queryLimit > 0 && len(res.Rows) > queryLimit {
			res = &store.Result{Columns: res.Columns, Rows: res.Rows[:queryLimit]}
		}

		if queryChart {
			label, value := queryLabel, queryValue
			if label == "" && len(res.Columns) > 0 {
				label = res.Columns[0]
			}
			if value == "" && len(res.Columns) > 1 {
				value = res.Columns[1]
			}
			return render.BarChart(res, label, value)
		}

		if err := render.To(os.Stdout, queryFormat, res); err != nil {
			return err
		}
		if queryFormat == render.FormatTable {
			pterm.Println()
			pterm.Printf("%d row(s)\n", len(res.Rows))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVar(&queryFormat, "format", render.FormatTable, "Output format: table, json, or csv")
	queryCmd.Flags().BoolVar(&queryChart, "chart", false, "Render a horizontal bar chart instead of a table")
	queryCmd.Flags().StringVar(&queryLabel, "label", "", "Column supplying chart labels (default: first column)")
	queryCmd.Flags().StringVar(&queryValue, "value", "", "Column supplying chart values (default: second column)")
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0, "Cap the number of rendered rows (0 = all)")
}
