package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabTitles = [tabCount]string{"Grid", "Timeline", "Settings"}

func (m Model) View() string {
	if !m.ready {
		return statusStyle.Render("Loading...")
	}

	header := m.renderHeader()
	var body string
	switch m.activeTab {
	case tabGrid:
		body = m.gridView()
	case tabTimeline:
		body = m.timelineView()
	case tabSettings:
		body = m.settingsView()
	default:
		body = m.gridView()
	}

	statusLine := m.renderStatus()
	footer := m.renderFooter()
	return header + "\n\n" + body + "\n" + statusLine + "\n" + footer
}

func (m Model) renderHeader() string {
	parts := make([]string, 0, tabCount+1)
	parts = append(parts, headerAppStyle.Render(appName))
	for i, title := range tabTitles {
		if i == m.activeTab {
			parts = append(parts, activeTabStyle.Render(title))
		} else {
			parts = append(parts, inactiveTabStyle.Render(title))
		}
	}
	line := strings.Join(parts, " ")
	return headerBarStyle.Width(max(0, m.width)).Render(line)
}

func (m Model) renderStatus() string {
	if m.edit.active {
		label := [...]string{"name", "start date", "end date", "duration"}[m.edit.field]
		return statusStyle.Render("Edit "+label+": ") + m.edit.input.View()
	}
	if m.find.active {
		return statusStyle.Render("Find: ") + m.find.input.View()
	}
	if m.statusIsError {
		return errorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

func (m Model) renderFooter() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, cursorStyle.Render(h.Key)+" "+mutedStyle.Render(h.Desc))
	}
	return footerStyle.Width(max(0, m.width)).Render(strings.Join(parts, "  "))
}

func (m Model) contentWidth() int {
	if m.width == 0 {
		return 100
	}
	w := m.width - sectionStyle.GetHorizontalFrameSize()
	if w < 40 {
		return 40
	}
	return w
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
