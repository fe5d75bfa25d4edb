// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jgurria/dockplan/internal/timeline"
)

// Config holds the application configuration.
type Config struct {
	Board   BoardConfig   `toml:"board"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// BoardConfig holds the dock board settings.
type BoardConfig struct {
	// ReferenceDay is the day the board opens on. Empty means today.
	ReferenceDay     string           `toml:"reference_day"` // "YYYY-MM-DD"
	TimeRangeLabel   string           `toml:"time_range_label"`
	ShowNowIndicator bool             `toml:"show_now_indicator"`
	Locations        []LocationConfig `toml:"locations"`
}

// LocationConfig declares one dock door and its working window.
type LocationConfig struct {
	Name  string `toml:"name"`
	Start string `toml:"start"` // "HH:MM", empty means unconstrained
	End   string `toml:"end"`   // "HH:MM"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			ReferenceDay:     "",
			TimeRangeLabel:   "00:00 - 24:00",
			ShowNowIndicator: true,
			Locations: []LocationConfig{
				{Name: "Door 1", Start: "06:00", End: "22:00"},
				{Name: "Door 2", Start: "06:00", End: "22:00"},
				{Name: "Door 3", Start: "", End: ""},
			},
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "dockplan.db"
	}
	return filepath.Join(home, ".local", "share", "dockplan", "dockplan.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "dockplan", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DOCKPLAN_REFERENCE_DAY"); v != "" {
		cfg.Board.ReferenceDay = v
	}
	if v := os.Getenv("DOCKPLAN_TIME_RANGE_LABEL"); v != "" {
		cfg.Board.TimeRangeLabel = v
	}
	if v := os.Getenv("DOCKPLAN_NOW_INDICATOR"); v != "" {
		cfg.Board.ShowNowIndicator = strings.EqualFold(v, "true") || v == "1"
	}
	if v := os.Getenv("DOCKPLAN_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("DOCKPLAN_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Board.ReferenceDay != "" {
		if err := validateDay(c.Board.ReferenceDay); err != nil {
			return err
		}
	}
	if len(c.Board.Locations) == 0 {
		return errors.New("at least one location must be configured")
	}
	seen := map[string]bool{}
	for _, loc := range c.Board.Locations {
		if loc.Name == "" {
			return errors.New("location name must be set")
		}
		if seen[loc.Name] {
			return fmt.Errorf("duplicate location: %s", loc.Name)
		}
		seen[loc.Name] = true

		// Windows are optional, but when present they come as a pair.
		hasStart := loc.Start != ""
		hasEnd := loc.End != ""
		if hasStart != hasEnd {
			return fmt.Errorf("location %s: both start and end must be set, or neither", loc.Name)
		}
		if hasStart {
			if err := validateTime(loc.Start, "start"); err != nil {
				return fmt.Errorf("location %s: %w", loc.Name, err)
			}
			if err := validateTime(loc.End, "end"); err != nil {
				return fmt.Errorf("location %s: %w", loc.Name, err)
			}
			if loc.Start >= loc.End && loc.End != "24:00" {
				return fmt.Errorf("location %s: start must be before end", loc.Name)
			}
		}
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// HoursMap converts the configured locations into the working-hours map
// the board engine consumes. Unconstrained locations get no entry.
func (c *Config) HoursMap() timeline.HoursMap {
	hours := timeline.HoursMap{}
	for _, loc := range c.Board.Locations {
		if loc.Start == "" {
			continue
		}
		hours[loc.Name] = append(hours[loc.Name], timeline.HoursEntry{
			Start: loc.Start,
			End:   loc.End,
		})
	}
	return hours
}

// LocationNames returns the configured location names in declaration
// order.
func (c *Config) LocationNames() []string {
	names := make([]string, 0, len(c.Board.Locations))
	for _, loc := range c.Board.Locations {
		names = append(names, loc.Name)
	}
	return names
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	if !isDigits(t[0:2]) || !isDigits(t[3:5]) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

// validateDay checks if a day string is in YYYY-MM-DD format.
func validateDay(d string) error {
	if len(d) != 10 || d[4] != '-' || d[7] != '-' {
		return fmt.Errorf("reference_day must be in YYYY-MM-DD format, got %q", d)
	}
	if !isDigits(d[0:4]) || !isDigits(d[5:7]) || !isDigits(d[8:10]) {
		return fmt.Errorf("reference_day must be in YYYY-MM-DD format, got %q", d)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
