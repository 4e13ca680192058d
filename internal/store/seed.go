package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/ganttly/internal/model"
)

// Defaults carries the config-sourced settings applied to a fresh database.
// The migration's column defaults cover everything Defaults does not name.
type Defaults struct {
	ColorMode model.ColorMode
	PaletteID string
	Calendar  model.WorkingDaysConfig
}

// SeedSampleProject populates an empty database with a small example chart so
// a first run has something to show, and stamps the settings row with the
// configured defaults. It is idempotent and safe on every startup: a database
// that already holds tasks is left untouched, settings row included.
func SeedSampleProject(ctx context.Context, db *sql.DB, defaults Defaults) error {
	repo := NewTaskRepo(db)
	n, err := repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}

	if err := applyDefaults(ctx, db, defaults); err != nil {
		return fmt.Errorf("apply settings defaults: %w", err)
	}

	id := func(name string) string {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte("task:"+name)).String()
	}

	sample := []model.Task{
		{ID: id("project"), Type: model.TypeSummary, Name: "Sample project", Color: "#cba6f7", Order: 0},
		{ID: id("design"), Type: model.TypeSummary, Name: "Design", ParentID: id("project"), Color: "#89b4fa", Order: 0},
		{ID: id("wireframes"), Type: model.TypeTask, Name: "Wireframes", ParentID: id("design"), StartDate: "2026-09-01", EndDate: "2026-09-05", Color: "#89b4fa", Order: 0},
		{ID: id("review"), Type: model.TypeTask, Name: "Design review", ParentID: id("design"), StartDate: "2026-09-08", EndDate: "2026-09-09", Color: "#89b4fa", Order: 1},
		{ID: id("build"), Type: model.TypeSummary, Name: "Build", ParentID: id("project"), Color: "#a6e3a1", Order: 1},
		{ID: id("backend"), Type: model.TypeTask, Name: "Backend", ParentID: id("build"), StartDate: "2026-09-10", EndDate: "2026-09-23", Color: "#a6e3a1", Order: 0},
		{ID: id("frontend"), Type: model.TypeTask, Name: "Frontend", ParentID: id("build"), StartDate: "2026-09-15", EndDate: "2026-09-30", Color: "#94e2d5", Order: 1},
		{ID: id("launch"), Type: model.TypeMilestone, Name: "Launch", ParentID: id("project"), StartDate: "2026-10-01", EndDate: "2026-10-01", Color: "#f38ba8", Order: 2},
	}
	for _, t := range sample {
		if err := repo.Upsert(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

// applyDefaults overlays the configured defaults onto the settings row the
// migration inserted. Empty fields keep the migration's value.
func applyDefaults(ctx context.Context, db *sql.DB, d Defaults) error {
	repo := NewSettingsRepo(db)
	s, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	if d.ColorMode != "" {
		s.Colors.Mode = d.ColorMode
	}
	if d.PaletteID != "" {
		s.Colors.Theme.SelectedPaletteID = d.PaletteID
	}
	if d.Calendar.HolidayRegion != "" {
		s.Calendar = d.Calendar
	}
	return repo.Save(ctx, s)
}
