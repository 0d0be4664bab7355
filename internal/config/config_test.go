package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != "5002" {
		t.Errorf("port = %q, want 5002", cfg.Server.Port)
	}
	if cfg.Model.Path != "models/model.gob" {
		t.Errorf("model path = %q", cfg.Model.Path)
	}
	if cfg.Model.MetricsPath != "models/metrics.json" {
		t.Errorf("metrics path = %q", cfg.Model.MetricsPath)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "server:\n  port: \"9000\"\nmodel:\n  path: \"/srv/model.gob\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Model.Path != "/srv/model.gob" {
		t.Errorf("model path = %q", cfg.Model.Path)
	}
	// Unset fields still get defaults.
	if cfg.Model.MetricsPath != "models/metrics.json" {
		t.Errorf("metrics path = %q", cfg.Model.MetricsPath)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MODEL_PATH", "/tmp/other.gob")
	t.Setenv("METRICS_PATH", "/tmp/other.json")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Model.Path != "/tmp/other.gob" {
		t.Errorf("model path = %q", cfg.Model.Path)
	}
	if cfg.Model.MetricsPath != "/tmp/other.json" {
		t.Errorf("metrics path = %q", cfg.Model.MetricsPath)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
