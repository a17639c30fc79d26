package main

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-scan/internal/config"
)

func TestRunInitWritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.yaml")

	if err := runInit(path, false); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if cfg.Similarity != "cosine" {
		t.Errorf("Similarity = %q, want cosine", cfg.Similarity)
	}
}

func TestRunInitRefusesToOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.yaml")
	if err := runInit(path, false); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	if err := runInit(path, false); err == nil {
		t.Error("expected error overwriting existing config without --force")
	}
	if err := runInit(path, true); err != nil {
		t.Errorf("runInit with force: %v", err)
	}
}
