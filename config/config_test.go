package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.ORCID.Timeout() != 10*time.Second {
		t.Errorf("ORCID timeout: got %v", cfg.ORCID.Timeout())
	}
	if cfg.ROR.MaxResults != 5 {
		t.Errorf("ROR max results: got %d", cfg.ROR.MaxResults)
	}
	if cfg.Defaults.ResourceType != "Dataset" {
		t.Errorf("Resource type: got %q", cfg.Defaults.ResourceType)
	}
	if cfg.Defaults.License != "CC BY 4.0" {
		t.Errorf("License: got %q", cfg.Defaults.License)
	}
	if cfg.OutputDir != "./metadata_output" {
		t.Errorf("Output dir: got %q", cfg.OutputDir)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
orcid:
  timeout_seconds: 3
  max_results: 2
defaults:
  license: CC0 1.0
output_dir: /tmp/meta
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ORCID.Timeout() != 3*time.Second {
		t.Errorf("ORCID timeout: got %v", cfg.ORCID.Timeout())
	}
	if cfg.ORCID.MaxResults != 2 {
		t.Errorf("ORCID max results: got %d", cfg.ORCID.MaxResults)
	}
	if cfg.Defaults.License != "CC0 1.0" {
		t.Errorf("License: got %q", cfg.Defaults.License)
	}
	if cfg.OutputDir != "/tmp/meta" {
		t.Errorf("Output dir: got %q", cfg.OutputDir)
	}

	// Untouched sections keep their defaults.
	if cfg.ROR.TimeoutSeconds != 10 {
		t.Errorf("ROR timeout seconds: got %d", cfg.ROR.TimeoutSeconds)
	}
	if cfg.Defaults.ResourceType != "Dataset" {
		t.Errorf("Resource type: got %q", cfg.Defaults.ResourceType)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("METAGEN_TEST_OUTPUT", "/data/out")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output_dir: ${METAGEN_TEST_OUTPUT}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "/data/out" {
		t.Errorf("Output dir: got %q", cfg.OutputDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadOrDefaultExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output_dir: /explicit\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg.OutputDir != "/explicit" {
		t.Errorf("Output dir: got %q", cfg.OutputDir)
	}

	if _, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for explicit missing path")
	}
}
