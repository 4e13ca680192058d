package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/ganttly/internal/colors"
	"github.com/jask/ganttly/internal/hierarchy"
	"github.com/jask/ganttly/internal/model"
)

const (
	colDate = 10
	colDur  = 4
	colSwat = 2
)

// gridView renders the spreadsheet-like task grid: indented names, dates,
// working-day durations and a swatch of the resolved display color.
func (m Model) gridView() string {
	rows := m.rows()
	width := m.contentWidth()
	nameWidth := width - 2*colDate - colDur - colSwat - 8
	if nameWidth < 16 {
		nameWidth = 16
	}

	var b strings.Builder
	header := fmt.Sprintf("%s  %s  %s  %s  %s",
		padRight("Task", nameWidth),
		padRight("Start", colDate),
		padRight("End", colDate),
		padRight("Dur", colDur),
		"  ")
	b.WriteString(mutedStyle.Render(header))
	b.WriteString("\n")

	visible := m.visibleRows()
	endIdx := m.topIndex + visible
	if endIdx > len(rows) {
		endIdx = len(rows)
	}
	for i := m.topIndex; i < endIdx; i++ {
		b.WriteString(m.renderGridRow(rows[i], i == m.cursor, nameWidth))
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("No tasks yet. Press n to add one."))
		b.WriteString("\n")
	}
	scroll := fmt.Sprintf("%d-%d of %d", m.topIndex+1, endIdx, len(rows))
	if len(rows) == 0 {
		scroll = "0 of 0"
	}
	b.WriteString(mutedStyle.Render(scroll))

	return sectionStyle.Render(titleStyle.Render("Tasks") + "\n" + b.String())
}

func (m Model) renderGridRow(row hierarchy.Row, selected bool, nameWidth int) string {
	t := row.Task
	indent := strings.Repeat("  ", row.Level)
	marker := "  "
	if row.HasChildren {
		if m.collapsed[t.ID] {
			marker = "▸ "
		} else {
			marker = "▾ "
		}
	} else if t.IsMilestone() {
		marker = "◆ "
	}

	name := truncate(indent+marker+t.Name, nameWidth)
	start, end, dur := m.gridCells(t)

	line := fmt.Sprintf("%s  %s  %s  %s  ",
		padRight(name, nameWidth),
		padRight(start, colDate),
		padRight(end, colDate),
		padRight(dur, colDur))

	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(colors.ComputeTaskColor(t, m.tasks, m.settings.Colors))).
		Render(strings.Repeat(" ", colSwat))

	if selected {
		return selectedRowStyle.Render(line) + swatch
	}
	if t.IsSummary() {
		return summaryNameStyle.Render(line) + swatch
	}
	return line + swatch
}

// gridCells resolves the three value cells exactly as the derived-state layer
// dictates: summary rows show aggregated dates or stay blank, leaf rows show
// stored dates and a policy-aware duration.
func (m Model) gridCells(t model.Task) (start, end, dur string) {
	if t.IsSummary() {
		r := hierarchy.SummaryDates(m.tasks, t.ID)
		if r == nil {
			return "", "", ""
		}
		return r.StartDate, r.EndDate, strconv.Itoa(r.Duration)
	}
	if t.StartDate == "" && t.EndDate == "" {
		return "", "", ""
	}
	return t.StartDate, t.EndDate, strconv.Itoa(m.displayDuration(t))
}
