package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ganttly/internal/colors"
	"github.com/jask/ganttly/internal/model"
)

// Settings tab entries, in display order.
const (
	settingColorMode = iota
	settingPalette
	settingMilestoneAccent
	settingExcludeSaturday
	settingExcludeSunday
	settingExcludeHolidays
	settingHolidayRegion
	settingCount
)

var colorModes = []model.ColorMode{
	model.ModeManual,
	model.ModeTheme,
	model.ModeSummary,
	model.ModeTaskType,
	model.ModeHierarchy,
}

func (m Model) settingsView() string {
	var b strings.Builder
	for i := 0; i < settingCount; i++ {
		label, value := m.settingLine(i)
		line := fmt.Sprintf("%s %s", padRight(label, 22), value)
		if i == m.settingsCursor {
			b.WriteString(selectedRowStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter/l cycles forward, h cycles back"))
	return sectionStyle.Render(titleStyle.Render("Settings") + "\n" + b.String())
}

func (m Model) settingLine(idx int) (label, value string) {
	s := m.settings
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	switch idx {
	case settingColorMode:
		return "Color mode", string(s.Colors.Mode)
	case settingPalette:
		if s.Colors.Mode != model.ModeTheme {
			return "Palette", mutedStyle.Render("(theme mode only)")
		}
		return "Palette", s.Colors.Theme.SelectedPaletteID
	case settingMilestoneAccent:
		return "Milestone accent", onOff(s.Colors.Summary.UseMilestoneAccent)
	case settingExcludeSaturday:
		return "Exclude Saturdays", onOff(s.Calendar.ExcludeSaturday)
	case settingExcludeSunday:
		return "Exclude Sundays", onOff(s.Calendar.ExcludeSunday)
	case settingExcludeHolidays:
		return "Exclude holidays", onOff(s.Calendar.ExcludeHolidays)
	case settingHolidayRegion:
		return "Holiday region", s.Calendar.HolidayRegion
	}
	return "", ""
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
		return m, nil
	case "down", "j":
		if m.settingsCursor < settingCount-1 {
			m.settingsCursor++
		}
		return m, nil
	case "enter", "l", "right", " ":
		return m.cycleSetting(1)
	case "h", "left":
		return m.cycleSetting(-1)
	}
	return m, nil
}

func (m Model) cycleSetting(dir int) (tea.Model, tea.Cmd) {
	s := m.settings
	switch m.settingsCursor {
	case settingColorMode:
		s.Colors.Mode = cycle(colorModes, s.Colors.Mode, dir)
	case settingPalette:
		if s.Colors.Mode != model.ModeTheme {
			// rendered as "(theme mode only)"; not cyclable either
			return m, nil
		}
		s.Colors.Theme.SelectedPaletteID = cycle(paletteIDs(), s.Colors.Theme.SelectedPaletteID, dir)
	case settingMilestoneAccent:
		s.Colors.Summary.UseMilestoneAccent = !s.Colors.Summary.UseMilestoneAccent
	case settingExcludeSaturday:
		s.Calendar.ExcludeSaturday = !s.Calendar.ExcludeSaturday
	case settingExcludeSunday:
		s.Calendar.ExcludeSunday = !s.Calendar.ExcludeSunday
	case settingExcludeHolidays:
		s.Calendar.ExcludeHolidays = !s.Calendar.ExcludeHolidays
	case settingHolidayRegion:
		s.Calendar.HolidayRegion = cycle(m.holidays.Regions(), s.Calendar.HolidayRegion, dir)
	}
	m.settings = s
	return m, saveSettingsCmd(m.ctx, m.repos, s)
}

func paletteIDs() []string {
	ps := colors.Palettes()
	ids := make([]string, 0, len(ps)+1)
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	ids = append(ids, model.PaletteMonochrome)
	return ids
}

// cycle advances cur within options by dir, wrapping; unknown values land on
// the first option.
func cycle[T comparable](options []T, cur T, dir int) T {
	if len(options) == 0 {
		return cur
	}
	idx := 0
	for i, o := range options {
		if o == cur {
			idx = (i + dir + len(options)) % len(options)
			break
		}
	}
	return options[idx]
}
