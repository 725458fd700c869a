package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := loadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}
	if c.Database.Path != "chinook.duckdb" {
		t.Errorf("Database.Path = %q, want default chinook.duckdb", c.Database.Path)
	}
	if c.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", c.LogLevel)
	}
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	data := "database:\n  path: /data/store.duckdb\nlog_level: debug\n"
	if err := os.WriteFile(p, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := loadFrom(p)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}
	if c.Database.Path != "/data/store.duckdb" {
		t.Errorf("Database.Path = %q, want /data/store.duckdb", c.Database.Path)
	}
	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", c.LogLevel)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte("database:\n  path: /data/file.duckdb\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TUNESTAT_DATABASE_PATH", "/env/wins.duckdb")
	t.Setenv("TUNESTAT_LOG_LEVEL", "error")

	c, err := loadFrom(p)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}
	if c.Database.Path != "/env/wins.duckdb" {
		t.Errorf("Database.Path = %q, want env value", c.Database.Path)
	}
	if c.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", c.LogLevel)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte("database: [broken\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFrom(p); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
