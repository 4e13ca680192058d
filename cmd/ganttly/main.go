package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ganttly/internal/config"
	"github.com/jask/ganttly/internal/model"
	"github.com/jask/ganttly/internal/store"
	"github.com/jask/ganttly/internal/tui"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--validate" {
		if err := runValidation(); err != nil {
			log.Fatalf("validate: %v", err)
		}
		fmt.Println("ok")
		return
	}

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := config.EnsureFile(cfg); err != nil {
		log.Printf("warn: write default config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := store.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := store.SeedSampleProject(ctx, db, settingsDefaults(cfg)); err != nil {
		log.Fatalf("seed sample project: %v", err)
	}

	repos := tui.Repos{
		Tasks:    store.NewTaskRepo(db),
		Settings: store.NewSettingsRepo(db),
	}

	p := tea.NewProgram(tui.New(ctx, repos, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// settingsDefaults maps the config file's defaults onto the first-run
// settings row.
func settingsDefaults(cfg config.Config) store.Defaults {
	return store.Defaults{
		ColorMode: model.ColorMode(cfg.Colors.Mode),
		PaletteID: cfg.Colors.PaletteID,
		Calendar: model.WorkingDaysConfig{
			ExcludeSaturday: cfg.Calendar.ExcludeSaturday,
			ExcludeSunday:   cfg.Calendar.ExcludeSunday,
			ExcludeHolidays: cfg.Calendar.ExcludeHolidays,
			HolidayRegion:   cfg.Calendar.HolidayRegion,
		},
	}
}
