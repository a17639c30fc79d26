package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Similarity != "cosine" {
		t.Errorf("Similarity = %q, want cosine", cfg.Similarity)
	}
	if cfg.Mu != 2 {
		t.Errorf("Mu = %d, want 2", cfg.Mu)
	}
}

func TestLoadWithEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Similarity != "cosine" {
		t.Errorf("Similarity = %q, want cosine", cfg.Similarity)
	}
}

func TestLoadOverridesDefaultsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.yaml")
	contents := "similarity: jaccard\nmu: 5\nepsilon: 0.7\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Similarity != "jaccard" {
		t.Errorf("Similarity = %q, want jaccard", cfg.Similarity)
	}
	if cfg.Mu != 5 {
		t.Errorf("Mu = %d, want 5", cfg.Mu)
	}
	if cfg.Epsilon != 0.7 {
		t.Errorf("Epsilon = %v, want 0.7", cfg.Epsilon)
	}
	if cfg.NumSamples != 128 {
		t.Errorf("NumSamples = %d, want default 128 (unset in file)", cfg.NumSamples)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/scan.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadRejectsUnknownSimilarity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.yaml")
	if err := os.WriteFile(path, []byte("similarity: manhattan\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown similarity measure")
	}
}

func TestLoadRejectsMuBelowTwo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.yaml")
	if err := os.WriteFile(path, []byte("mu: 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for mu below 2")
	}
}

func TestLoadRejectsEpsilonOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.yaml")
	if err := os.WriteFile(path, []byte("epsilon: 1.5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for epsilon outside [0, 1]")
	}
}

func TestLoadZeroNumSamplesFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.yaml")
	if err := os.WriteFile(path, []byte("num_samples: 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NumSamples != DefaultConfig().NumSamples {
		t.Errorf("NumSamples = %d, want default %d", cfg.NumSamples, DefaultConfig().NumSamples)
	}
}

func TestConfigValidateRejectsUnknownOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestConfigValidateAcceptsDefaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}
