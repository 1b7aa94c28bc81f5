// Package config loads tool settings from a TOML file, applying defaults
// when the file is absent.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds user-tunable defaults. All fields have working zero-config
// values; the file only overrides them.
type Config struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"` // text|json
	Color     bool   `toml:"color"`
	Indent    string `toml:"indent"` // indentation unit for the format command
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Color:     true,
		Indent:    "    ",
	}
}

// Load reads config.toml from dir. An empty dir means the snxml directory
// under the user config dir. A missing file is not an error; a file that
// exists but fails to parse is.
func Load(dir string) (Config, error) {
	cfg := Default()

	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		dir = filepath.Join(base, "snxml")
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config.toml: %w", err)
	}
	return cfg, nil
}
