package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ganttly/internal/calendar"
	"github.com/jask/ganttly/internal/hierarchy"
	"github.com/jask/ganttly/internal/model"
)

// rows is the current flattened view of the task tree.
func (m Model) rows() []hierarchy.Row {
	return hierarchy.Flatten(m.tasks, m.collapsed)
}

func (m Model) currentRow() (hierarchy.Row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return hierarchy.Row{}, false
	}
	return rows[m.cursor], true
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		return m, nil
	}

	if m.activeTab == tabSettings {
		return m.updateSettings(msg)
	}

	switch msg.String() {
	case "up", "k", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorInWindow()
		}
		return m, nil
	case "down", "j", "ctrl+n":
		if m.cursor < len(m.rows())-1 {
			m.cursor++
			m.ensureCursorInWindow()
		}
		return m, nil
	case " ":
		return m.toggleCollapse()
	case "K", "shift+up":
		return m.moveRow(-1)
	case "J", "shift+down":
		return m.moveRow(1)
	case ">":
		return m.indentRow()
	case "<":
		return m.outdentRow()
	case "enter", "r":
		return m.beginEdit(fieldName)
	case "s":
		return m.beginEdit(fieldStart)
	case "f":
		return m.beginEdit(fieldEnd)
	case "d":
		return m.beginEdit(fieldDuration)
	case "n":
		parentID := ""
		if row, ok := m.currentRow(); ok {
			parentID = row.Task.ParentID
		}
		return m.withStatus("Adding task..."), createTaskCmd(m.ctx, m.repos, parentID)
	case "x":
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		if m.cursor > 0 {
			m.cursor--
		}
		return m.withStatus("Deleted " + row.Task.Name), deleteTaskCmd(m.ctx, m.repos, row.Task.ID)
	case "/":
		input := textinput.New()
		input.Placeholder = "task name"
		input.Focus()
		m.find = findState{active: true, input: input}
		return m, textinput.Blink
	case "e":
		return m.withStatus("Exporting..."), exportCmd(m.tasks, m.collapsed, m.settings.Colors)
	}
	return m, nil
}

func (m Model) toggleCollapse() (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok || !row.HasChildren {
		return m, nil
	}
	// collapsed is rebuilt instead of mutated so queued renders of the old
	// model keep seeing their own snapshot.
	next := make(map[string]bool, len(m.collapsed)+1)
	for id, v := range m.collapsed {
		next[id] = v
	}
	if next[row.Task.ID] {
		delete(next, row.Task.ID)
	} else {
		next[row.Task.ID] = true
	}
	m.collapsed = next
	m.ensureCursorInWindow()
	return m, nil
}

// ---------------------------------------------------------------------------
// Cell editing
// ---------------------------------------------------------------------------

func (m Model) beginEdit(field editField) (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	t := row.Task
	if t.IsSummary() && field != fieldName {
		return m.withStatus("Summary dates are derived from children"), nil
	}

	input := textinput.New()
	input.CharLimit = 64
	switch field {
	case fieldName:
		input.SetValue(t.Name)
	case fieldStart:
		input.SetValue(t.StartDate)
		input.Placeholder = model.DateLayout
	case fieldEnd:
		input.SetValue(t.EndDate)
		input.Placeholder = model.DateLayout
	case fieldDuration:
		input.SetValue(strconv.Itoa(m.displayDuration(t)))
	}
	input.Focus()
	input.CursorEnd()
	m.edit = editState{active: true, taskID: t.ID, field: field, input: input}
	return m, textinput.Blink
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.edit = editState{}
		return m.withStatus("Edit cancelled"), nil
	case "enter":
		return m.commitEdit()
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.edit.input, cmd = m.edit.input.Update(msg)
	return m, cmd
}

// commitEdit validates the buffer and writes the task back. Date edits
// re-solve the displayed duration; duration edits solve a new end date under
// the active working-day policy. Validation failures stay inline and leave
// the stored task untouched.
func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	t, ok := m.taskByID(m.edit.taskID)
	if !ok {
		m.edit = editState{}
		return m, nil
	}
	value := strings.TrimSpace(m.edit.input.Value())
	cfg := m.workingConfig()

	switch m.edit.field {
	case fieldName:
		if value == "" {
			return m.withError("Name cannot be empty"), nil
		}
		t.Name = value
	case fieldStart, fieldEnd:
		if value != "" {
			if _, err := model.ParseDate(value); err != nil {
				return m.withError("Invalid date, want " + model.DateLayout), nil
			}
		}
		if m.edit.field == fieldStart {
			t.StartDate = value
		} else {
			t.EndDate = value
		}
		if t.IsMilestone() {
			// milestones are a single day
			t.StartDate = value
			t.EndDate = value
		}
		if n, err := calendar.WorkingDays(t.StartDate, t.EndDate, cfg, m.holidays); err == nil {
			t.Duration = n
		}
	case fieldDuration:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return m.withError("Duration must be a positive number of working days"), nil
		}
		if t.StartDate == "" {
			return m.withError("Set a start date before editing duration"), nil
		}
		end, err := calendar.AddWorkingDays(t.StartDate, n, cfg, m.holidays)
		if err != nil {
			return m.withError("Cannot solve end date: " + err.Error()), nil
		}
		t.EndDate = end
		t.Duration = n
	}

	m.edit = editState{}
	return m.withStatus("Saved " + t.Name), saveTaskCmd(m.ctx, m.repos, t)
}

func (m Model) taskByID(id string) (model.Task, bool) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// displayDuration is what the duration cell shows: working days under the
// active policy for leaves, inclusive span for summaries.
func (m Model) displayDuration(t model.Task) int {
	if t.IsSummary() {
		if r := hierarchy.SummaryDates(m.tasks, t.ID); r != nil {
			return r.Duration
		}
		return 0
	}
	if n, err := calendar.WorkingDays(t.StartDate, t.EndDate, m.workingConfig(), m.holidays); err == nil {
		return n
	}
	return hierarchy.LeafDuration(t)
}

// ---------------------------------------------------------------------------
// Find
// ---------------------------------------------------------------------------

func (m Model) updateFind(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.find = findState{}
		return m.withStatus("Find cancelled"), nil
	case "enter":
		query := strings.TrimSpace(m.find.input.Value())
		m.find = findState{}
		if query == "" {
			return m, nil
		}
		rows := m.rows()
		idx := bestMatch(rows, query)
		if idx < 0 {
			return m.withStatus("No task matching " + strconv.Quote(query)), nil
		}
		m.cursor = idx
		m.ensureCursorInWindow()
		return m.withStatus("Jumped to " + rows[idx].Task.Name), nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.find.input, cmd = m.find.input.Update(msg)
	return m, cmd
}

// ---------------------------------------------------------------------------
// Viewport bookkeeping
// ---------------------------------------------------------------------------

func (m *Model) visibleRows() int {
	if m.height == 0 {
		return 10
	}
	frameV := sectionStyle.GetVerticalFrameSize()
	headerHeight := 1
	headerGap := 1
	tableHeaderHeight := 1
	statusAndFooter := 2
	available := m.height - frameV - headerHeight - headerGap - tableHeaderHeight - statusAndFooter - 2
	if available < 3 {
		available = 3
	}
	return available
}

func (m *Model) ensureCursorInWindow() {
	total := len(m.rows())
	if m.cursor >= total {
		m.cursor = total - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	visible := m.visibleRows()
	if visible <= 0 {
		return
	}
	if m.cursor < m.topIndex {
		m.topIndex = m.cursor
	} else if m.cursor >= m.topIndex+visible {
		m.topIndex = m.cursor - visible + 1
	}
	maxTop := total - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if m.topIndex > maxTop {
		m.topIndex = maxTop
	}
	if m.topIndex < 0 {
		m.topIndex = 0
	}
}
