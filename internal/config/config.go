// Package config loads the optional ~/.yabane/config.yml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDayWidth is the pixel width of one day column in the gantt.
	DefaultDayWidth = 20
	// DefaultMarginDays pads derived date ranges on both sides.
	DefaultMarginDays = 7
)

// Config holds user-tunable settings. Every field has a working default so
// a missing config file is not an error.
type Config struct {
	DBPath     string       `yaml:"db_path"`
	DayWidth   int          `yaml:"day_width"`
	MarginDays int          `yaml:"margin_days"`
	Export     ExportConfig `yaml:"export"`
}

// ExportConfig selects the workbook sections written by default.
type ExportConfig struct {
	Sections []string `yaml:"sections"`
}

// allSections is the default export selection, in sheet order.
var allSections = []string{"overview", "arrows", "wbs", "milestones", "members", "issues"}

// Default returns the built-in configuration, rooted under the user's home
// directory.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DBPath:     filepath.Join(home, ".yabane", "yabane.db"),
		DayWidth:   DefaultDayWidth,
		MarginDays: DefaultMarginDays,
		Export:     ExportConfig{Sections: append([]string(nil), allSections...)},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".yabane", "config.yml")
}

// Load reads the config file at path, layering it over the defaults. A
// missing file returns the defaults unchanged. The YABANE_DB environment
// variable overrides the database path last.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to env override
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if env := os.Getenv("YABANE_DB"); env != "" {
		cfg.DBPath = env
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DayWidth <= 0 {
		return fmt.Errorf("day_width must be positive, got %d", c.DayWidth)
	}
	if c.MarginDays < 0 {
		return fmt.Errorf("margin_days must not be negative, got %d", c.MarginDays)
	}
	for _, s := range c.Export.Sections {
		if !validSection(s) {
			return fmt.Errorf("unknown export section %q", s)
		}
	}
	return nil
}

func validSection(name string) bool {
	for _, s := range allSections {
		if s == name {
			return true
		}
	}
	return false
}
