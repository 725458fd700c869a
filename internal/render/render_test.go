// Copyright (c) 2025 Tunestat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"bytes"
	"strings"
	"testing"

	"tunestat/cli/internal/store"
)

func sampleResult() *store.Result {
	return &store.Result{
		Columns: []string{"genre", "tracks_sold", "percentage_sold"},
		Rows: [][]any{
			{"Rock", int64(561), 0.5338},
			{"Alternative & Punk", int64(130), 0.1237},
		},
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleResult()); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"columns"`, `"genre"`, `"Rock"`, `561`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s: %s", want, out)
		}
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, sampleResult()); err != nil {
		t.Fatalf("CSV() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d CSV lines, want 3", len(lines))
	}
	if lines[0] != "genre,tracks_sold,percentage_sold" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Rock,561,") {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestToUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := To(&buf, "xml", sampleResult()); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestBarChartMissingColumn(t *testing.T) {
	if err := BarChart(sampleResult(), "nope", "tracks_sold"); err == nil {
		t.Error("expected error for missing label column")
	}
}

func TestBarChartNonNumericColumn(t *testing.T) {
	if err := BarChart(sampleResult(), "tracks_sold", "genre"); err == nil {
		t.Error("expected error for non-numeric value column")
	}
}
