// Copyright (c) 2025 Tunestat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"strings"
	"testing"

	apperrors "tunestat/cli/internal/errors"
)

func TestPresentError(t *testing.T) {
	tests := []struct {
		name    string
		context string
		err     error
		want    []string
	}{
		{
			name: "nil error",
			err:  nil,
			want: []string{""},
		},
		{
			name:    "plain error with context",
			context: "report",
			err:     errors.New("boom"),
			want:    []string{"report: boom"},
		},
		{
			name: "bad database gets hint",
			err:  apperrors.New(apperrors.BadDatabase, "no such file: chinook.duckdb"),
			want: []string{"no such file", "--db"},
		},
		{
			name: "open failed gets hint",
			err:  apperrors.Wrap(apperrors.OpenFailed, "cannot open database", errors.New("file is locked")),
			want: []string{"file is locked", "locked by another process"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PresentError(tt.context, tt.err)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("PresentError() = %q, want it to contain %q", got, w)
				}
			}
		})
	}
}
