package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GANTTLY_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Colors.Mode != "theme" || cfg.Colors.PaletteID != "mocha" {
		t.Fatalf("color defaults wrong: %+v", cfg.Colors)
	}
	if !cfg.Calendar.ExcludeSaturday || !cfg.Calendar.ExcludeSunday || cfg.Calendar.ExcludeHolidays {
		t.Fatalf("calendar defaults wrong: %+v", cfg.Calendar)
	}
	if cfg.Calendar.HolidayRegion != "US" {
		t.Fatalf("region default = %q", cfg.Calendar.HolidayRegion)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[calendar]\nholiday_region = \"GB\"\nexclude_holidays = true\n\n[colors]\nmode = \"hierarchy\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GANTTLY_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Calendar.HolidayRegion != "GB" || !cfg.Calendar.ExcludeHolidays {
		t.Fatalf("file values not applied: %+v", cfg.Calendar)
	}
	if cfg.Colors.Mode != "hierarchy" {
		t.Fatalf("mode = %q, want hierarchy", cfg.Colors.Mode)
	}
	// untouched keys keep their defaults
	if cfg.Colors.PaletteID != "mocha" {
		t.Fatalf("palette default lost: %q", cfg.Colors.PaletteID)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("GANTTLY_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Calendar.HolidayRegion = "DE"
	cfg.Colors.PaletteID = "pastel"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Calendar.HolidayRegion != "DE" || got.Colors.PaletteID != "pastel" {
		t.Fatalf("round trip lost values: %+v", got)
	}
}

func TestEnsureFileWritesOnceOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("GANTTLY_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := EnsureFile(cfg); err != nil {
		t.Fatalf("EnsureFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}

	// user edits survive subsequent startups
	body := "[colors]\nmode = \"manual\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureFile(cfg); err != nil {
		t.Fatalf("EnsureFile on existing file: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Colors.Mode != "manual" {
		t.Fatalf("EnsureFile overwrote an existing file: mode = %q", got.Colors.Mode)
	}
}
