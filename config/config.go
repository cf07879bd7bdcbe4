// Package config loads pipebomb-sweeper configuration from a YAML file.
// Zero-value fields fall back to the built-in defaults, so a config file
// only needs to name what it changes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sweeper "github.com/Guayota/pipebomb-sweeper"
)

// Config holds all game configuration
type Config struct {
	Game GameConfig `yaml:"game"`
	UI   UIConfig   `yaml:"ui"`
	Log  LogConfig  `yaml:"log"`
}

// GameConfig holds the field parameters
type GameConfig struct {
	Rows    int `yaml:"rows"`
	Cols    int `yaml:"cols"`
	Density int `yaml:"density"` // Hazard percentage, 0-100
}

// UIConfig holds rendering settings
type UIConfig struct {
	Title         string      `yaml:"title"`
	HideStatusBar bool        `yaml:"hide_status_bar"`
	Glyphs        GlyphConfig `yaml:"glyphs"`
}

// GlyphConfig overrides the display glyphs. Each value is a string whose
// first rune is used; empty strings keep the default.
type GlyphConfig struct {
	Hazard string `yaml:"hazard"`
	Flag   string `yaml:"flag"`
	Closed string `yaml:"closed"`
}

// LogConfig holds logging settings. With no file set, logging is
// discarded: stdout belongs to the game screen.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration: an 8x8 field at 16%
// hazard density.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Rows:    8,
			Cols:    8,
			Density: 16,
		},
		UI: UIConfig{
			Title: "pipebomb-sweeper",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	if cfg.Game.Rows == 0 {
		cfg.Game.Rows = 8
	}
	if cfg.Game.Cols == 0 {
		cfg.Game.Cols = 8
	}
	if cfg.Game.Density == 0 {
		cfg.Game.Density = 16
	}
	if cfg.UI.Title == "" {
		cfg.UI.Title = "pipebomb-sweeper"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return &cfg, nil
}

// Runes resolves the glyph overrides against the default glyph set
func (g GlyphConfig) Runes() sweeper.Glyphs {
	gs := sweeper.DefaultGlyphs()
	if g.Hazard != "" {
		gs.Hazard = []rune(g.Hazard)[0]
	}
	if g.Flag != "" {
		gs.Flag = []rune(g.Flag)[0]
	}
	if g.Closed != "" {
		gs.Closed = []rune(g.Closed)[0]
	}
	return gs
}
