package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("BACKEND_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GetServerAddress() != "0.0.0.0:8080" {
		t.Fatalf("unexpected address %q", cfg.GetServerAddress())
	}
	if len(cfg.Roster.Magistral) != 5 || len(cfg.Roster.Complementary) != 8 {
		t.Fatalf("unexpected roster sizes: %d/%d", len(cfg.Roster.Magistral), len(cfg.Roster.Complementary))
	}
	if cfg.Backend.Timeout != 10*time.Second {
		t.Fatalf("unexpected backend timeout %v", cfg.Backend.Timeout)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte(`
backend:
  base_url: http://from-file:5000
  timeout: 3s
roster:
  magistral: ["A", "B"]
`)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("BACKEND_URL", "http://from-env:5000/")
	t.Setenv("ROSTER_COMPLEMENTARY", " X , ,Y ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.BaseURL != "http://from-env:5000" {
		t.Fatalf("env should win and trailing slash be trimmed, got %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Fatalf("timeout from file not applied: %v", cfg.Backend.Timeout)
	}
	if got := cfg.Roster.Magistral; len(got) != 2 || got[0] != "A" {
		t.Fatalf("magistral roster from file not applied: %v", got)
	}
	if got := cfg.Roster.Complementary; len(got) != 2 || got[0] != "X" || got[1] != "Y" {
		t.Fatalf("complementary roster from env not applied: %v", got)
	}
}

func TestValidateRejectsDefaultSecretInRelease(t *testing.T) {
	cfg := Default()
	cfg.Server.Mode = "release"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for default secret in release mode")
	}
	cfg.Session.Secret = "something-else"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
