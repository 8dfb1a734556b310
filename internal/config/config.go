// Package config handles the optional per-user config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultDataFile = "todos.json"
	DefaultColor    = "auto"

	dirName  = ".todosh"
	fileName = "config.toml"
)

// Config holds everything tunable from ~/.todosh/config.toml.
// Root flags override whatever is read here.
type Config struct {
	DataFile string `toml:"data_file"`
	Color    string `toml:"color"` // auto | always | never
}

func Default() Config {
	return Config{DataFile: DefaultDataFile, Color: DefaultColor}
}

func path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName, fileName), nil
}

// Load reads the config file if it exists. A missing file (or a missing
// home directory) just means defaults.
func Load() (Config, error) {
	cfg := Default()
	p, err := path()
	if err != nil {
		return cfg, nil
	}
	return LoadFile(p)
}

// LoadFile reads a specific config file, keeping defaults for fields the
// file does not set.
func LoadFile(p string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(p, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		cfg.Color = DefaultColor
	}
	return cfg, nil
}
