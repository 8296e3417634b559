package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CWMPTREE_CONFIG", "")
	cfg, err := LoadConfig("", "")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cwmp-tree.yaml")
	if err := os.WriteFile(file, []byte("log_level: debug\nroot: stb\nshow_metadata: false\njournal: file.cjl\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("CWMPTREE_JOURNAL=dotenv.cjl\nCWMPTREE_NO_COLOR=true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CWMPTREE_ROOT", "fap")
	// godotenv.Load sets variables that are not yet set; register cleanup
	// for them so other tests see a clean environment.
	t.Setenv("CWMPTREE_JOURNAL", "")
	os.Unsetenv("CWMPTREE_JOURNAL")
	t.Setenv("CWMPTREE_NO_COLOR", "")
	os.Unsetenv("CWMPTREE_NO_COLOR")

	cfg, err := LoadConfig(file, envFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug from file", cfg.LogLevel)
	}
	if cfg.Root != "fap" {
		t.Errorf("Root = %q, want fap from environment", cfg.Root)
	}
	if cfg.Journal != "dotenv.cjl" {
		t.Errorf("Journal = %q, want dotenv.cjl from .env", cfg.Journal)
	}
	if !cfg.NoColor || cfg.ShowMetadata {
		t.Errorf("NoColor = %v, ShowMetadata = %v", cfg.NoColor, cfg.ShowMetadata)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml"), ""); err == nil {
		t.Error("expected error for missing config file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("log_level: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad, ""); err == nil {
		t.Error("expected error for malformed config")
	}

	t.Setenv("CWMPTREE_JSON_LOG", "maybe")
	if _, err := LoadConfig("", ""); err == nil {
		t.Error("expected error for malformed boolean")
	}

	// a missing .env file is not an error
	t.Setenv("CWMPTREE_JSON_LOG", "1")
	cfg, err := LoadConfig("", filepath.Join(dir, ".env"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !cfg.JSONLog {
		t.Error("JSONLog not read from environment")
	}
}
