package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wravell/logcask/core"
	"github.com/wravell/logcask/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOGCASK_DB", "")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Path != core.DefaultLogFileName {
		t.Errorf("expected default path %q, got %q", core.DefaultLogFileName, cfg.Path)
	}
}

func TestLoadFromYAMLFile(t *testing.T) {
	t.Setenv("LOGCASK_DB", "")

	path := filepath.Join(t.TempDir(), "logcask.yaml")
	if err := os.WriteFile(path, []byte("path: /var/lib/logcask/store.db\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Path != "/var/lib/logcask/store.db" {
		t.Errorf("expected configured path, got %q", cfg.Path)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logcask.yaml")
	if err := os.WriteFile(path, []byte("path: from-file.db\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LOGCASK_DB", "from-env.db")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Path != "from-env.db" {
		t.Errorf("expected env override, got %q", cfg.Path)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for an explicitly provided but missing config file")
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logcask.yaml")
	if err := os.WriteFile(path, []byte("path: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
