package model

// ColorMode selects one of the five mutually exclusive display-color strategies.
type ColorMode string

const (
	ModeManual    ColorMode = "manual"
	ModeTheme     ColorMode = "theme"
	ModeSummary   ColorMode = "summary"
	ModeTaskType  ColorMode = "taskType"
	ModeHierarchy ColorMode = "hierarchy"
)

// PaletteMonochrome is the reserved palette id that selects a generated
// monochrome ramp from ThemeOptions.MonochromeBase instead of a named palette.
const PaletteMonochrome = "monochrome"

// ThemeOptions configure theme mode.
type ThemeOptions struct {
	SelectedPaletteID string
	MonochromeBase    string // hex; used when SelectedPaletteID == PaletteMonochrome
}

// SummaryOptions configure summary mode.
type SummaryOptions struct {
	UseMilestoneAccent   bool
	MilestoneAccentColor string
}

// TaskTypeOptions map each task type to a configured base color.
type TaskTypeOptions struct {
	TaskColor      string
	SummaryColor   string
	MilestoneColor string
}

// HierarchyOptions configure hierarchy mode.
type HierarchyOptions struct {
	BaseColor              string
	LightenPercentPerLevel int
	MaxLightenPercent      int
}

// ColorModeState is the full color configuration snapshot passed to the
// resolver on every call. Only the options record matching Mode is consulted.
type ColorModeState struct {
	Mode      ColorMode
	Theme     ThemeOptions
	Summary   SummaryOptions
	TaskType  TaskTypeOptions
	Hierarchy HierarchyOptions
}

// WorkingDaysConfig is the active calendar exclusion policy.
type WorkingDaysConfig struct {
	ExcludeSaturday bool
	ExcludeSunday   bool
	ExcludeHolidays bool
	HolidayRegion   string // two-letter region code for the holiday lookup
}

// HasExclusions reports whether any exclusion is active, i.e. whether working
// day arithmetic differs from plain calendar-day arithmetic.
func (c WorkingDaysConfig) HasExclusions() bool {
	return c.ExcludeSaturday || c.ExcludeSunday || c.ExcludeHolidays
}
