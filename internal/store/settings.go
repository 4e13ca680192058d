package store

import (
	"context"
	"database/sql"

	"github.com/jask/ganttly/internal/model"
)

// Settings is the persisted editor state: the active color mode with all its
// per-mode options, and the working-day policy.
type Settings struct {
	Colors   model.ColorModeState
	Calendar model.WorkingDaysConfig
}

// SettingsRepo handles the single-row settings table.
type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Load(ctx context.Context) (Settings, error) {
	var s Settings
	var mode string
	err := r.db.QueryRowContext(ctx, `
	SELECT color_mode, palette_id, monochrome_base,
	       use_milestone_accent, milestone_accent_color,
	       type_task_color, type_summary_color, type_milestone_color,
	       hierarchy_base_color, hierarchy_lighten_per_level, hierarchy_max_lighten,
	       exclude_saturday, exclude_sunday, exclude_holidays, holiday_region
	FROM settings WHERE id = 1`).Scan(
		&mode,
		&s.Colors.Theme.SelectedPaletteID,
		&s.Colors.Theme.MonochromeBase,
		&s.Colors.Summary.UseMilestoneAccent,
		&s.Colors.Summary.MilestoneAccentColor,
		&s.Colors.TaskType.TaskColor,
		&s.Colors.TaskType.SummaryColor,
		&s.Colors.TaskType.MilestoneColor,
		&s.Colors.Hierarchy.BaseColor,
		&s.Colors.Hierarchy.LightenPercentPerLevel,
		&s.Colors.Hierarchy.MaxLightenPercent,
		&s.Calendar.ExcludeSaturday,
		&s.Calendar.ExcludeSunday,
		&s.Calendar.ExcludeHolidays,
		&s.Calendar.HolidayRegion,
	)
	if err != nil {
		return Settings{}, err
	}
	s.Colors.Mode = model.ColorMode(mode)
	return s, nil
}

func (r *SettingsRepo) Save(ctx context.Context, s Settings) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE settings SET
	 color_mode = ?,
	 palette_id = ?,
	 monochrome_base = ?,
	 use_milestone_accent = ?,
	 milestone_accent_color = ?,
	 type_task_color = ?,
	 type_summary_color = ?,
	 type_milestone_color = ?,
	 hierarchy_base_color = ?,
	 hierarchy_lighten_per_level = ?,
	 hierarchy_max_lighten = ?,
	 exclude_saturday = ?,
	 exclude_sunday = ?,
	 exclude_holidays = ?,
	 holiday_region = ?
	WHERE id = 1`,
		string(s.Colors.Mode),
		s.Colors.Theme.SelectedPaletteID,
		s.Colors.Theme.MonochromeBase,
		s.Colors.Summary.UseMilestoneAccent,
		s.Colors.Summary.MilestoneAccentColor,
		s.Colors.TaskType.TaskColor,
		s.Colors.TaskType.SummaryColor,
		s.Colors.TaskType.MilestoneColor,
		s.Colors.Hierarchy.BaseColor,
		s.Colors.Hierarchy.LightenPercentPerLevel,
		s.Colors.Hierarchy.MaxLightenPercent,
		s.Calendar.ExcludeSaturday,
		s.Calendar.ExcludeSunday,
		s.Calendar.ExcludeHolidays,
		s.Calendar.HolidayRegion,
	)
	return err
}
