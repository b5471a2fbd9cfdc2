package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Yurihaia/ycf/internal/config"
)

func writeToml(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "ycf.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeToml(t, dir, "[fmt]\nindent_width = 4\nuse_tabs = false\n\n[check]\nmax_depth = 16\n")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Fmt.IndentWidth != 4 || cfg.Check.MaxDepth != 16 {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeToml(t, dir, "[fmt]\nuse_tabs = true\n")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Fmt.UseTabs {
		t.Error("use_tabs not applied")
	}
	if cfg.Fmt.IndentWidth != 2 || cfg.Check.MaxDepth != 128 {
		t.Errorf("defaults not filled: %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeToml(t, dir, "[fmt]\nindnet_width = 4\n")
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestLoadValidates(t *testing.T) {
	dir := t.TempDir()
	path := writeToml(t, dir, "[check]\nmax_depth = 0\n")
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for max_depth = 0")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeToml(t, root, "[fmt]\nindent_width = 8\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := config.Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("expected to find ycf.toml in an ancestor")
	}
	if cfg.Fmt.IndentWidth != 8 {
		t.Errorf("got %+v", cfg)
	}
}

func TestDiscoverDefaultsWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	cfg, path, err := config.Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Errorf("unexpected config at %s", path)
	}
	if cfg != config.Default() {
		t.Errorf("got %+v", cfg)
	}
}
