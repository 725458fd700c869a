// Copyright (c) 2025 Tunestat
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package render turns a materialized query result into terminal output:
// a pterm table or horizontal bar chart for humans, JSON or CSV for pipes.
// It defines no styling contract beyond what pterm's defaults provide.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-json"
	"github.com/pterm/pterm"

	"tunestat/cli/internal/store"
)

// Format names accepted by the --format flag.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// Table renders the result as a pterm table with a header row.
func Table(res *store.Result) error {
	data := pterm.TableData{res.Columns}
	for _, row := range res.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = store.DisplayString(v)
		}
		data = append(data, cells)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// BarChart renders a horizontal bar chart from the given label and value
// columns. Bar lengths are normalized against the largest value, so
// fractional values (percentages) chart the same as raw counts; exact
// numbers belong in the table next to the chart.
func BarChart(res *store.Result, labelColumn, valueColumn string) error {
	li := res.ColumnIndex(labelColumn)
	vi := res.ColumnIndex(valueColumn)
	if li < 0 || vi < 0 {
		return fmt.Errorf("chart columns %q/%q not in result", labelColumn, valueColumn)
	}

	max := 0.0
	values := make([]float64, 0, len(res.Rows))
	labels := make([]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		v, ok := store.AsFloat(row[vi])
		if !ok {
			return fmt.Errorf("column %q is not numeric", valueColumn)
		}
		values = append(values, v)
		labels = append(labels, store.DisplayString(row[li]))
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return fmt.Errorf("no positive values in column %q to chart", valueColumn)
	}

	bars := make(pterm.Bars, len(values))
	for i, v := range values {
		bars[i] = pterm.Bar{
			Label: labels[i],
			Value: int(math.Round(v / max * 100)),
		}
	}
	return pterm.DefaultBarChart.WithHorizontal().WithBars(bars).Render()
}

// JSON writes the result as a single JSON object {columns, rows}.
func JSON(w io.Writer, res *store.Result) error {
	enc := json.NewEncoder(w)
	return enc.Encode(res)
}

// CSV writes the result with a header row.
func CSV(w io.Writer, res *store.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(res.Columns); err != nil {
		return err
	}
	for _, row := range res.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = store.DisplayString(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// To dispatches on a format name for the machine-readable outputs and the
// default table. Chart rendering is separate because it needs column hints.
func To(w io.Writer, format string, res *store.Result) error {
	switch format {
	case FormatJSON:
		return JSON(w, res)
	case FormatCSV:
		return CSV(w, res)
	case FormatTable, "":
		return Table(res)
	default:
		return fmt.Errorf("unknown format %q (want table, json, or csv)", format)
	}
}
