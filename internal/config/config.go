// Package config loads tool configuration from ycf.toml, discovered by
// walking parent directories from the working tree upward.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config — содержимое ycf.toml. Все секции опциональны; отсутствующий
// файл даёт Default().
type Config struct {
	Fmt   FmtConfig   `toml:"fmt"`
	Check CheckConfig `toml:"check"`
}

type FmtConfig struct {
	IndentWidth int  `toml:"indent_width"`
	UseTabs     bool `toml:"use_tabs"`
}

type CheckConfig struct {
	// MaxDepth ограничивает вложенность контейнеров при проверке.
	MaxDepth int `toml:"max_depth"`
}

// Default returns the configuration used when no ycf.toml exists.
func Default() Config {
	return Config{
		Fmt:   FmtConfig{IndentWidth: 2},
		Check: CheckConfig{MaxDepth: 128},
	}
}

// Find walks from startDir to the filesystem root looking for ycf.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "ycf.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes a ycf.toml file, filling unset fields from Default().
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Fmt.IndentWidth < 0 {
		return Default(), fmt.Errorf("%s: fmt.indent_width must not be negative", path)
	}
	if cfg.Check.MaxDepth < 1 {
		return Default(), fmt.Errorf("%s: check.max_depth must be at least 1", path)
	}
	return cfg, nil
}

// Discover finds and loads the nearest ycf.toml. When none exists the
// defaults are returned with an empty path.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Default(), "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Default(), path, err
	}
	return cfg, path, nil
}
