// Package config loads editor configuration from TOML files.
//
// Configuration covers behavior that is deliberately a product decision
// rather than a hard-coded policy: the undo-stack limit, whether z-order
// changes participate in undo history, and the default label language.
// A missing config file yields [Default].
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the root editor configuration.
type Config struct {
	History HistoryConfig `toml:"history"`
	Labels  LabelsConfig  `toml:"labels"`
}

// HistoryConfig controls the command history.
type HistoryConfig struct {
	// Limit caps the number of undo entries; zero or below means
	// unbounded.
	Limit int `toml:"limit"`

	// TrackZOrder records bring-to-front reordering as an undoable edit.
	// Off by default: most editors treat paint order as a view concern,
	// but the choice is explicitly configurable.
	TrackZOrder bool `toml:"track_z_order"`
}

// LabelsConfig controls label resolution.
type LabelsConfig struct {
	// DefaultLang is the BCP 47 language tag preferred when resolving
	// localized labels (e.g. "en", "de-CH").
	DefaultLang string `toml:"default_lang"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		History: HistoryConfig{Limit: 0, TrackZOrder: false},
		Labels:  LabelsConfig{DefaultLang: "en"},
	}
}

// Load reads a TOML configuration file, applying defaults for absent
// keys. A missing file is not an error and yields Default. Unknown keys
// are ignored for forward compatibility.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
