// Copyright (c) 2025 Tunestat
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dbpath resolves the database file every command runs against.
// Resolution order: the --db flag, the TUNESTAT_DB environment variable,
// the configured path, then the built-in default. The first non-empty
// source wins; the result is then validated against the filesystem.
package dbpath

import (
	"fmt"
	"os"
	"strings"

	apperrors "tunestat/cli/internal/errors"
)

// EnvVar is the environment variable consulted after the --db flag.
const EnvVar = "TUNESTAT_DB"

// Source identifies where a resolved path came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceConfig  Source = "config"
	SourceDefault Source = "default"
)

// Resolved is a database path together with its provenance.
type Resolved struct {
	Path   string
	Source Source
}

// Resolve picks the database path from flag > env > config > default.
// configured and fallback may be empty; flagValue comes from --db.
func Resolve(flagValue, configured, fallback string) Resolved {
	if p := strings.TrimSpace(flagValue); p != "" {
		return Resolved{Path: p, Source: SourceFlag}
	}
	if p := strings.TrimSpace(os.Getenv(EnvVar)); p != "" {
		return Resolved{Path: p, Source: SourceEnv}
	}
	if p := strings.TrimSpace(configured); p != "" {
		return Resolved{Path: p, Source: SourceConfig}
	}
	return Resolved{Path: fallback, Source: SourceDefault}
}

// Validate checks that the resolved path names an existing regular file.
// The practice schema pre-exists; this tool never creates database files,
// so a missing file is an error rather than an invitation to create one.
func Validate(r Resolved) error {
	if strings.TrimSpace(r.Path) == "" {
		return apperrors.New(apperrors.BadDatabase, "no database path configured")
	}
	info, err := os.Stat(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return apperrors.New(apperrors.BadDatabase,
				fmt.Sprintf("database file does not exist: %s (from %s)", r.Path, r.Source))
		}
		return apperrors.Wrap(apperrors.BadDatabase,
			fmt.Sprintf("cannot stat database file: %s", r.Path), err)
	}
	if info.IsDir() {
		return apperrors.New(apperrors.BadDatabase,
			fmt.Sprintf("database path is a directory: %s", r.Path))
	}
	return nil
}
