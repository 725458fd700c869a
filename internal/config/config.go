// Package config loads CLI configuration with koanf: defaults first, then an
// optional YAML file in the XDG config dir, then TUNESTAT_* environment
// variables. Only non-secret settings exist; there are no credentials for a
// local database file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"tunestat/cli/internal/xdg"
)

// envPrefix namespaces the environment variables read by Load.
// TUNESTAT_DATABASE_PATH and TUNESTAT_LOG_LEVEL map onto the struct below;
// the shorter TUNESTAT_DB alias is resolved by the dbpath package, not here.
const envPrefix = "TUNESTAT_"

// Config holds non-sensitive CLI settings.
type Config struct {
	// Database is the path to the database file reports run against.
	Database DatabaseConfig `koanf:"database"`
	// LogLevel sets the diagnostic logger level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
}

// DatabaseConfig holds database file settings.
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and environment.
func defaultConfig() Config {
	return Config{
		Database: DatabaseConfig{Path: "chinook.duckdb"},
		LogLevel: "warn",
	}
}

// Path returns the config file location inside the XDG config dir.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load assembles configuration from defaults, the config file (if present)
// and the environment. A missing config file is not an error.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return defaultConfig(), err
	}
	return loadFrom(p)
}

// loadFrom is Load with an explicit file path, split out for tests.
func loadFrom(path string) (Config, error) {
	k := koanf.New(".")

	def := defaultConfig()
	if err := k.Load(structs.Provider(def, "koanf"), nil); err != nil {
		return def, err
	}

	// The config file is optional; only load it when it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return def, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// TUNESTAT_DATABASE_PATH=/x -> database.path, TUNESTAT_LOG_LEVEL=debug -> log_level
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if s == "database_path" {
			return "database.path"
		}
		return s
	}), nil)
	if err != nil {
		return def, err
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return def, err
	}
	return c, nil
}
