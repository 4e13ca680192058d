package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Calendar CalendarConfig
	Colors   ColorsConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string
}

// CalendarConfig holds the default working-day policy for new databases.
type CalendarConfig struct {
	ExcludeSaturday bool
	ExcludeSunday   bool
	ExcludeHolidays bool
	HolidayRegion   string
}

// ColorsConfig holds default color-mode settings.
type ColorsConfig struct {
	Mode      string
	PaletteID string
}

// Load reads configuration from file and env. Env var overrides use prefix GANTTLY_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "ganttly", "ganttly.db"))
	v.SetDefault("ui.date_format", "02/01")
	v.SetDefault("calendar.exclude_saturday", true)
	v.SetDefault("calendar.exclude_sunday", true)
	v.SetDefault("calendar.exclude_holidays", false)
	v.SetDefault("calendar.holiday_region", "US")
	v.SetDefault("colors.mode", "theme")
	v.SetDefault("colors.palette_id", "mocha")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GANTTLY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ganttly"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GANTTLY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// EnsureFile writes cfg to the config path when no file exists there yet, so
// users get a file with the effective defaults to edit. An existing file is
// never touched.
func EnsureFile(cfg Config) error {
	if _, err := os.Stat(configPath()); err == nil {
		return nil
	}
	return Save(cfg)
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("calendar.exclude_saturday", cfg.Calendar.ExcludeSaturday)
	v.Set("calendar.exclude_sunday", cfg.Calendar.ExcludeSunday)
	v.Set("calendar.exclude_holidays", cfg.Calendar.ExcludeHolidays)
	v.Set("calendar.holiday_region", cfg.Calendar.HolidayRegion)
	v.Set("colors.mode", cfg.Colors.Mode)
	v.Set("colors.palette_id", cfg.Colors.PaletteID)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func configPath() string {
	if path := os.Getenv("GANTTLY_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "ganttly", "config.toml")
}
