package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/ganttly/internal/model"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	return db
}

func TestTaskRepoRoundTrip(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db := openTestDB(t)
	repo := NewTaskRepo(db)

	created, err := repo.Create(ctx, model.Task{
		Name:      "Backend",
		StartDate: "2026-09-10",
		EndDate:   "2026-09-23",
		Color:     "#a6e3a1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, model.TypeTask, created.Type)

	created.Name = "Backend work"
	created.ColorOverride = "#ff0000"
	require.NoError(t, repo.Upsert(ctx, created))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Backend work", tasks[0].Name)
	require.Equal(t, "#ff0000", tasks[0].ColorOverride)
	require.Equal(t, "2026-09-10", tasks[0].StartDate)
}

func TestTaskRepoDeleteReparentsChildren(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db := openTestDB(t)
	repo := NewTaskRepo(db)

	require.NoError(t, repo.Upsert(ctx, model.Task{ID: "root", Type: model.TypeSummary, Name: "Root"}))
	require.NoError(t, repo.Upsert(ctx, model.Task{ID: "mid", Type: model.TypeSummary, Name: "Mid", ParentID: "root"}))
	require.NoError(t, repo.Upsert(ctx, model.Task{ID: "leaf", Type: model.TypeTask, Name: "Leaf", ParentID: "mid"}))

	require.NoError(t, repo.Delete(ctx, "mid"))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	byID := map[string]model.Task{}
	for _, tk := range tasks {
		byID[tk.ID] = tk
	}
	require.Equal(t, "root", byID["leaf"].ParentID)
}

func TestNextOrderAppends(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db := openTestDB(t)
	repo := NewTaskRepo(db)

	n, err := repo.NextOrder(ctx, "p")
	require.NoError(t, err)
	require.Equal(t, 0, n)

	require.NoError(t, repo.Upsert(ctx, model.Task{ID: "a", Name: "a", ParentID: "p", Order: 0, Type: model.TypeTask}))
	require.NoError(t, repo.Upsert(ctx, model.Task{ID: "b", Name: "b", ParentID: "p", Order: 4, Type: model.TypeTask}))

	n, err = repo.NextOrder(ctx, "p")
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestSettingsRepoRoundTrip(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db := openTestDB(t)
	repo := NewSettingsRepo(db)

	s, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, model.ModeTheme, s.Colors.Mode)
	require.Equal(t, "mocha", s.Colors.Theme.SelectedPaletteID)
	require.True(t, s.Calendar.ExcludeSaturday)

	s.Colors.Mode = model.ModeHierarchy
	s.Colors.Hierarchy.LightenPercentPerLevel = 7
	s.Calendar.ExcludeHolidays = true
	s.Calendar.HolidayRegion = "GB"
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, model.ModeHierarchy, got.Colors.Mode)
	require.Equal(t, 7, got.Colors.Hierarchy.LightenPercentPerLevel)
	require.True(t, got.Calendar.ExcludeHolidays)
	require.Equal(t, "GB", got.Calendar.HolidayRegion)
}

func TestReorderRewritesSortKey(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db := openTestDB(t)
	repo := NewTaskRepo(db)

	require.NoError(t, repo.Upsert(ctx, model.Task{ID: "a", Name: "a", ParentID: "p", Order: 0, Type: model.TypeTask}))
	require.NoError(t, repo.Upsert(ctx, model.Task{ID: "b", Name: "b", ParentID: "p", Order: 1, Type: model.TypeTask}))

	require.NoError(t, repo.Reorder(ctx, "a", 1))
	require.NoError(t, repo.Reorder(ctx, "b", 0))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	byID := map[string]model.Task{}
	for _, tk := range tasks {
		byID[tk.ID] = tk
	}
	require.Equal(t, 1, byID["a"].Order)
	require.Equal(t, 0, byID["b"].Order)
}

func TestSetParentMovesTask(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db := openTestDB(t)
	repo := NewTaskRepo(db)

	require.NoError(t, repo.Upsert(ctx, model.Task{ID: "root", Type: model.TypeSummary, Name: "Root"}))
	require.NoError(t, repo.Upsert(ctx, model.Task{ID: "other", Type: model.TypeSummary, Name: "Other"}))
	require.NoError(t, repo.Upsert(ctx, model.Task{ID: "leaf", Type: model.TypeTask, Name: "Leaf", ParentID: "root", Order: 3}))

	require.NoError(t, repo.SetParent(ctx, "leaf", "other", 0))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	byID := map[string]model.Task{}
	for _, tk := range tasks {
		byID[tk.ID] = tk
	}
	require.Equal(t, "other", byID["leaf"].ParentID)
	require.Equal(t, 0, byID["leaf"].Order)

	// back to root level
	require.NoError(t, repo.SetParent(ctx, "leaf", "", 2))
	tasks, err = repo.List(ctx)
	require.NoError(t, err)
	for _, tk := range tasks {
		if tk.ID == "leaf" {
			require.Equal(t, "", tk.ParentID)
			require.Equal(t, 2, tk.Order)
		}
	}
}

func TestSeedSampleProjectIdempotent(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db := openTestDB(t)

	require.NoError(t, SeedSampleProject(ctx, db, Defaults{}))
	repo := NewTaskRepo(db)
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Greater(t, n, 0)

	require.NoError(t, SeedSampleProject(ctx, db, Defaults{}))
	again, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, n, again)
}

func TestSeedAppliesConfigDefaults(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db := openTestDB(t)

	defaults := Defaults{
		ColorMode: model.ModeSummary,
		PaletteID: "pastel",
		Calendar: model.WorkingDaysConfig{
			ExcludeSaturday: true,
			ExcludeHolidays: true,
			HolidayRegion:   "DE",
		},
	}
	require.NoError(t, SeedSampleProject(ctx, db, defaults))

	s, err := NewSettingsRepo(db).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, model.ModeSummary, s.Colors.Mode)
	require.Equal(t, "pastel", s.Colors.Theme.SelectedPaletteID)
	require.True(t, s.Calendar.ExcludeHolidays)
	require.False(t, s.Calendar.ExcludeSunday)
	require.Equal(t, "DE", s.Calendar.HolidayRegion)

	// reseeding a populated db must not clobber the user's settings
	s.Colors.Mode = model.ModeManual
	require.NoError(t, NewSettingsRepo(db).Save(ctx, s))
	require.NoError(t, SeedSampleProject(ctx, db, defaults))
	got, err := NewSettingsRepo(db).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, model.ModeManual, got.Colors.Mode)
}
