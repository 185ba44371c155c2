package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}

	if cfg.App.Name != "consent-theater" {
		t.Errorf("App.Name = %q", cfg.App.Name)
	}
	if cfg.Server.HTTPPort != 8090 {
		t.Errorf("HTTPPort = %d, want 8090", cfg.Server.HTTPPort)
	}
	if cfg.Server.Addr() != "0.0.0.0:8090" {
		t.Errorf("Addr = %q", cfg.Server.Addr())
	}
	if cfg.Ingest.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout = %v, want 10s", cfg.Ingest.FetchTimeout)
	}
	if cfg.Ingest.MaxUploadBytes != 16<<20 {
		t.Errorf("MaxUploadBytes = %d, want 16MiB", cfg.Ingest.MaxUploadBytes)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CONSENT_SERVER_HTTP_PORT", "9100")
	t.Setenv("CONSENT_LOGGER_LEVEL", "debug")

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if cfg.Server.HTTPPort != 9100 {
		t.Errorf("HTTPPort = %d, want env override 9100", cfg.Server.HTTPPort)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("Logger.Level = %q, want debug", cfg.Logger.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := []byte("server:\n  http_port: 9200\napp:\n  environment: production\n")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != 9200 {
		t.Errorf("HTTPPort = %d, want file value 9200", cfg.Server.HTTPPort)
	}
	if cfg.App.Environment != "production" {
		t.Errorf("Environment = %q", cfg.App.Environment)
	}
	// Untouched keys keep their defaults.
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("ReadTimeout = %v, want default", cfg.Server.ReadTimeout)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("expected error for explicit missing config path")
	}
}
