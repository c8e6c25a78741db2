package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig(viper.New(), "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddress != ":50051" || cfg.MetricsAddress != ":9090" {
		t.Fatalf("addresses = %q %q", cfg.ListenAddress, cfg.MetricsAddress)
	}
	if cfg.Store.Driver != "sqlite3" || cfg.Store.DSN != "./karaokesh.db" {
		t.Fatalf("store = %+v", cfg.Store)
	}
	if !cfg.CatalogWatch || cfg.RateLimit.RPS != 20 || cfg.RateLimit.Burst != 40 {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "karaokesh.yaml")
	data := []byte("store:\n  driver: file\n  dsn: /tmp/sessions.json\nrate_limit:\n  rps: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("KARAOKESH_LISTEN_ADDRESS", ":6000")
	t.Setenv("KARAOKESH_CATALOG_WATCH", "false")

	cfg, err := loadConfig(viper.New(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Driver != "file" || cfg.Store.DSN != "/tmp/sessions.json" {
		t.Fatalf("store = %+v", cfg.Store)
	}
	if cfg.RateLimit.RPS != 5 || cfg.RateLimit.Burst != 40 {
		t.Fatalf("rate limit = %+v", cfg.RateLimit)
	}
	if cfg.ListenAddress != ":6000" || cfg.CatalogWatch {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "karaokesh.yaml")
	if err := os.WriteFile(path, []byte("store: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadConfig(viper.New(), path); err == nil {
		t.Fatalf("expected error")
	}
}
