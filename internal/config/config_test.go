package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
	if !cfg.Board.ShowNowIndicator {
		t.Error("expected show_now_indicator true by default")
	}
	if len(cfg.Board.Locations) != 3 {
		t.Errorf("expected 3 default locations, got %d", len(cfg.Board.Locations))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected default theme, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[board]
reference_day = "2026-03-14"
time_range_label = "06:00 - 22:00"
show_now_indicator = false

[[board.locations]]
name = "North Dock"
start = "06:00"
end = "22:00"

[[board.locations]]
name = "South Dock"

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Board.ReferenceDay != "2026-03-14" {
		t.Errorf("expected reference_day 2026-03-14, got %s", cfg.Board.ReferenceDay)
	}
	if cfg.Board.ShowNowIndicator {
		t.Error("expected show_now_indicator false from file")
	}
	if len(cfg.Board.Locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(cfg.Board.Locations))
	}
	if cfg.Board.Locations[0].Name != "North Dock" {
		t.Errorf("expected location North Dock, got %s", cfg.Board.Locations[0].Name)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[board]
reference_day = "2026-03-14"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("DOCKPLAN_REFERENCE_DAY", "2026-04-01")
	t.Setenv("DOCKPLAN_UI_THEME", "mocha")
	t.Setenv("DOCKPLAN_DB_PATH", "/tmp/override.db")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Board.ReferenceDay != "2026-04-01" {
		t.Errorf("expected reference_day 2026-04-01 from env, got %s", cfg.Board.ReferenceDay)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha from env, got %s", cfg.UI.Theme)
	}
	if cfg.Storage.DBPath != "/tmp/override.db" {
		t.Errorf("expected db_path /tmp/override.db from env, got %s", cfg.Storage.DBPath)
	}
}

func TestValidate_InvalidReferenceDay(t *testing.T) {
	cfg := Default()
	cfg.Board.ReferenceDay = "14-03-2026"

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid reference_day")
	}
}

func TestValidate_EmptyLocations(t *testing.T) {
	cfg := Default()
	cfg.Board.Locations = nil

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty locations")
	}
}

func TestValidate_DuplicateLocation(t *testing.T) {
	cfg := Default()
	cfg.Board.Locations = []LocationConfig{
		{Name: "Door 1"},
		{Name: "Door 1"},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for duplicate location")
	}
}

func TestValidate_HalfConfiguredWindow(t *testing.T) {
	cfg := Default()
	cfg.Board.Locations = []LocationConfig{
		{Name: "Door 1", Start: "06:00"},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error when only start is set")
	}
}

func TestValidate_InvalidWindowFormat(t *testing.T) {
	cfg := Default()
	cfg.Board.Locations = []LocationConfig{
		{Name: "Door 1", Start: "6:00", End: "22:00"}, // Missing leading zero
	}

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid window format")
	}
}

func TestValidate_WindowStartAfterEnd(t *testing.T) {
	cfg := Default()
	cfg.Board.Locations = []LocationConfig{
		{Name: "Door 1", Start: "22:00", End: "06:00"},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error when start >= end")
	}
}

func TestValidate_FullDayWindow(t *testing.T) {
	cfg := Default()
	cfg.Board.Locations = []LocationConfig{
		{Name: "Door 1", Start: "00:00", End: "24:00"},
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected full-day window to validate, got: %v", err)
	}
}

func TestHoursMap(t *testing.T) {
	cfg := Default()
	cfg.Board.Locations = []LocationConfig{
		{Name: "Door 1", Start: "06:00", End: "22:00"},
		{Name: "Door 2"},
	}

	hours := cfg.HoursMap()
	if len(hours["Door 1"]) != 1 {
		t.Fatalf("expected one entry for Door 1, got %d", len(hours["Door 1"]))
	}
	if hours["Door 1"][0].Start != "06:00" || hours["Door 1"][0].End != "22:00" {
		t.Errorf("unexpected Door 1 window: %+v", hours["Door 1"][0])
	}
	if _, ok := hours["Door 2"]; ok {
		t.Error("unconstrained location must have no hours entry")
	}
}

func TestLocationNames(t *testing.T) {
	cfg := Default()
	names := cfg.LocationNames()
	if len(names) != len(cfg.Board.Locations) {
		t.Fatalf("expected %d names, got %d", len(cfg.Board.Locations), len(names))
	}
	for i, loc := range cfg.Board.Locations {
		if names[i] != loc.Name {
			t.Errorf("names[%d] = %q, want %q", i, names[i], loc.Name)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.Board.ReferenceDay = "2026-05-01"
	cfg.UI.Theme = "macchiato"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Board.ReferenceDay != "2026-05-01" {
		t.Errorf("expected reference_day 2026-05-01, got %s", loaded.Board.ReferenceDay)
	}
	if loaded.UI.Theme != "macchiato" {
		t.Errorf("expected theme macchiato, got %s", loaded.UI.Theme)
	}
	if len(loaded.Board.Locations) != len(cfg.Board.Locations) {
		t.Errorf("expected %d locations, got %d", len(cfg.Board.Locations), len(loaded.Board.Locations))
	}
}
