// Package config loads the optional singlish.ini engine configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "gopkg.in/ini.v1"
)

// Config controls the interactive frontends.
type Config struct {
	DefaultMode string // "sinhala" or "latin"
	ToggleKey   string // key that flips the input mode
	Preview     bool   // show the pending buffer as a preedit
}

const (
	defaultMode   = "sinhala"
	defaultToggle = "ctrl+space"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{DefaultMode: defaultMode, ToggleKey: defaultToggle, Preview: true}
}

// Load reads cfg from an ini file. A missing file is not an error: defaults
// apply. A present but malformed file is reported, since silently ignoring a
// config the user wrote would be worse than failing.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	cfg.DefaultMode = file.Section("input").Key("default_mode").In(cfg.DefaultMode, []string{"sinhala", "latin"})
	cfg.ToggleKey = file.Section("input").Key("toggle_key").MustString(cfg.ToggleKey)
	cfg.Preview = file.Section("input").Key("preview").MustBool(cfg.Preview)
	return cfg, nil
}

// Resolve loads an explicit path, or ./singlish.ini when one exists.
func Resolve(cliPath string) (Config, error) {
	if cliPath != "" {
		return Load(cliPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Default(), nil
	}
	path := filepath.Join(cwd, "singlish.ini")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}
	return Default(), nil
}
