package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/ganttly/internal/colors"
	"github.com/jask/ganttly/internal/hierarchy"
	"github.com/jask/ganttly/internal/model"
)

const timelineLabelWidth = 24

// timelineView renders proportional bars over the chart's full date range.
// Bars are filled with the same resolved colors the grid swatches and the
// exporters use.
func (m Model) timelineView() string {
	rows := m.rows()
	width := m.contentWidth()
	chartWidth := width - timelineLabelWidth - 3
	if chartWidth < 10 {
		chartWidth = 10
	}

	minISO, maxISO := m.chartBounds(rows)
	if minISO == "" {
		body := mutedStyle.Render("No dated tasks to chart.")
		return sectionStyle.Render(titleStyle.Render("Timeline") + "\n" + body)
	}
	minStart, _ := model.ParseDate(minISO)
	maxEnd, _ := model.ParseDate(maxISO)
	span := model.DaysBetween(minStart, maxEnd) + 1

	var b strings.Builder
	lo, hi := m.axisLabel(minISO), m.axisLabel(maxISO)
	axis := padRight(lo, timelineLabelWidth+1+chartWidth-len(hi)) + hi
	b.WriteString(mutedStyle.Render(axis))
	b.WriteString("\n")

	visible := m.visibleRows()
	endIdx := m.topIndex + visible
	if endIdx > len(rows) {
		endIdx = len(rows)
	}
	for i := m.topIndex; i < endIdx; i++ {
		row := rows[i]
		label := truncate(strings.Repeat(" ", row.Level)+row.Task.Name, timelineLabelWidth)
		if i == m.cursor {
			label = cursorStyle.Render(padRight(label, timelineLabelWidth))
		} else {
			label = padRight(label, timelineLabelWidth)
		}
		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(m.renderBar(row, minStart, span, chartWidth))
		b.WriteString("\n")
	}

	return sectionStyle.Render(titleStyle.Render("Timeline") + "\n" + b.String())
}

// axisLabel formats a chart endpoint with the configured display format,
// falling back to the stored form when the format is unset or the date does
// not parse.
func (m Model) axisLabel(iso string) string {
	format := m.cfg.UI.DateFormat
	if format == "" {
		return iso
	}
	t, err := model.ParseDate(iso)
	if err != nil {
		return iso
	}
	return t.Format(format)
}

// renderBar places a colored block proportional to the row's span. Summaries
// chart their derived range; rows without dates stay empty; milestones get a
// single diamond cell.
func (m Model) renderBar(row hierarchy.Row, minStart time.Time, span, chartWidth int) string {
	startISO, endISO, ok := m.rowSpan(row.Task)
	if !ok {
		return ""
	}
	s, _ := model.ParseDate(startISO)
	e, _ := model.ParseDate(endISO)
	offset := model.DaysBetween(minStart, s) * chartWidth / span
	length := (model.DaysBetween(s, e) + 1) * chartWidth / span
	if length < 1 {
		length = 1
	}
	if offset+length > chartWidth {
		length = chartWidth - offset
	}
	if length < 1 {
		length = 1
	}

	fill := colors.ComputeTaskColor(row.Task, m.tasks, m.settings.Colors)
	style := lipgloss.NewStyle().Background(lipgloss.Color(fill))
	if row.Task.IsMilestone() {
		return strings.Repeat(" ", offset) + lipgloss.NewStyle().Foreground(lipgloss.Color(fill)).Render("◆")
	}
	return strings.Repeat(" ", offset) + style.Render(strings.Repeat(" ", length))
}

// rowSpan mirrors the exporters: derived span for summaries, stored dates for
// leaves.
func (m Model) rowSpan(t model.Task) (start, end string, ok bool) {
	if t.IsSummary() {
		r := hierarchy.SummaryDates(m.tasks, t.ID)
		if r == nil {
			return "", "", false
		}
		return r.StartDate, r.EndDate, true
	}
	if _, err := model.ParseDate(t.StartDate); err != nil {
		return "", "", false
	}
	if _, err := model.ParseDate(t.EndDate); err != nil {
		return "", "", false
	}
	return t.StartDate, t.EndDate, true
}

// chartBounds finds the min start and max end over the visible rows.
func (m Model) chartBounds(rows []hierarchy.Row) (minISO, maxISO string) {
	for _, row := range rows {
		start, end, ok := m.rowSpan(row.Task)
		if !ok {
			continue
		}
		if minISO == "" || start < minISO {
			minISO = start
		}
		if maxISO == "" || end > maxISO {
			maxISO = end
		}
	}
	return minISO, maxISO
}
