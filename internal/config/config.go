// Package config handles the ~/.hearthplan directory and the user-editable
// planning defaults: daily hours, app blocks, day types, and extra
// day/subject aliases for the adjustment parser.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/avandermeer/hearthplan/internal/domain"
)

const defaultConfigYAML = `# hearthplan configuration
version: 1

# Budgeted learning hours per school day.
hours_per_day: 2

# Fixed daily app blocks, scheduled once per day, always kept.
app_blocks:
  - label: Reading Eggs
    minutes: 15
  - label: Math practice app
    minutes: 10

# Day types: normal, light, or appointment. Unlisted days are normal.
day_types:
  Wednesday: light

# Extra spellings for the adjustment parser, on top of the built-ins.
# subject_aliases:
#   mathe: math
# day_aliases:
#   hump day: Wednesday
`

// AppBlockConfig is one fixed daily block entry.
type AppBlockConfig struct {
	Label   string `yaml:"label"`
	Minutes int    `yaml:"minutes"`
}

// Config models the hearthplan config file.
type Config struct {
	Version        int               `yaml:"version"`
	HoursPerDay    float64           `yaml:"hours_per_day"`
	AppBlocks      []AppBlockConfig  `yaml:"app_blocks"`
	DayTypes       map[string]string `yaml:"day_types"`
	SubjectAliases map[string]string `yaml:"subject_aliases,omitempty"`
	DayAliases     map[string]string `yaml:"day_aliases,omitempty"`
}

// Default returns the stock configuration used when no file exists.
func Default() Config {
	var cfg Config
	// The template is the source of truth; parsing it keeps the two in sync.
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err != nil {
		panic(fmt.Sprintf("built-in config template is invalid: %v", err))
	}
	return cfg
}

// Load reads the config at path, creating it with defaults on first run.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if writeErr := writeDefault(path); writeErr != nil {
			return Config{}, writeErr
		}
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	applyFallbacks(&cfg)
	return cfg, nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

func applyFallbacks(cfg *Config) {
	if cfg.HoursPerDay <= 0 {
		cfg.HoursPerDay = Default().HoursPerDay
	}
}

// DomainAppBlocks converts config entries to domain app blocks.
func (c Config) DomainAppBlocks() []domain.AppBlock {
	blocks := make([]domain.AppBlock, 0, len(c.AppBlocks))
	for _, b := range c.AppBlocks {
		blocks = append(blocks, domain.AppBlock{Label: b.Label, DefaultMinutes: b.Minutes})
	}
	return blocks
}

// DomainDayTypes expands the sparse day_types map into one entry per
// weekday; unknown day names or types are ignored.
func (c Config) DomainDayTypes() []domain.DayTypeConfig {
	out := make([]domain.DayTypeConfig, 0, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		dt := domain.DayNormal
		if raw, ok := c.DayTypes[string(day)]; ok {
			switch domain.DayType(raw) {
			case domain.DayLight:
				dt = domain.DayLight
			case domain.DayAppointment:
				dt = domain.DayAppointment
			}
		}
		out = append(out, domain.DayTypeConfig{Day: day, DayType: dt})
	}
	return out
}
