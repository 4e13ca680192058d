package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jask/ganttly/internal/export"
	"github.com/jask/ganttly/internal/hierarchy"
	"github.com/jask/ganttly/internal/store"
)

// runValidation executes a non-TUI smoke pass using a temporary DB: migrate,
// seed, then drive the derived-state pipeline end to end through the exporters.
func runValidation() error {
	dir, err := os.MkdirTemp("", "ganttly-validate-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	ctx := context.Background()

	db, err := store.Open(filepath.Join(dir, "validate.db"))
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := store.RunMigrations(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := store.SeedSampleProject(ctx, db, store.Defaults{}); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	tasks, err := store.NewTaskRepo(db).List(ctx)
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}
	if len(tasks) == 0 {
		return fmt.Errorf("seed produced no tasks")
	}

	settings, err := store.NewSettingsRepo(db).Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	rows := hierarchy.Flatten(tasks, nil)
	if len(rows) != len(tasks) {
		return fmt.Errorf("flatten rows = %d, want %d", len(rows), len(tasks))
	}
	for _, row := range rows {
		if row.Task.IsSummary() {
			if r := hierarchy.SummaryDates(tasks, row.Task.ID); r == nil {
				return fmt.Errorf("summary %q has no derived dates", row.Task.Name)
			}
		}
	}

	var svg bytes.Buffer
	if err := export.WriteSVG(&svg, tasks, nil, settings.Colors); err != nil {
		return fmt.Errorf("svg export: %w", err)
	}
	if svg.Len() == 0 {
		return fmt.Errorf("svg export produced no output")
	}

	var csv bytes.Buffer
	if err := export.WriteCSV(&csv, tasks, nil, settings.Colors); err != nil {
		return fmt.Errorf("csv export: %w", err)
	}
	if csv.Len() == 0 {
		return fmt.Errorf("csv export produced no output")
	}
	return nil
}
