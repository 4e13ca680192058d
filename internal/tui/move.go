package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ganttly/internal/hierarchy"
	"github.com/jask/ganttly/internal/model"
)

// Structural edits: moving a row among its siblings and indenting/outdenting
// it across levels. Each planner is pure over the task snapshot and returns
// the target parent plus the full sibling id sequence to renumber, so a move
// is one SetParent followed by a clean 0..n-1 rewrite of sort keys. Rewriting
// every sibling keeps duplicate sort keys from pinning a row in place.

// effectiveParent is the parent id the display tree files a task under: tasks
// whose parent is unknown or themselves live at root.
func effectiveParent(tasks []model.Task, t model.Task) string {
	if t.ParentID == "" || t.ParentID == t.ID {
		return ""
	}
	for _, other := range tasks {
		if other.ID == t.ParentID {
			return t.ParentID
		}
	}
	return ""
}

// planMove swaps a task with its neighbor sibling in direction dir.
func planMove(tasks []model.Task, id string, dir int) (parentID string, orderedIDs []string, ok bool) {
	t, found := findTask(tasks, id)
	if !found {
		return "", nil, false
	}
	parentID = effectiveParent(tasks, t)
	sibs := hierarchy.Siblings(tasks, parentID)
	idx := siblingIndex(sibs, id)
	j := idx + dir
	if idx < 0 || j < 0 || j >= len(sibs) {
		return "", nil, false
	}
	orderedIDs = siblingIDs(sibs)
	orderedIDs[idx], orderedIDs[j] = orderedIDs[j], orderedIDs[idx]
	return parentID, orderedIDs, true
}

// planIndent makes the task the last child of its previous sibling.
func planIndent(tasks []model.Task, id string) (parentID string, orderedIDs []string, ok bool) {
	t, found := findTask(tasks, id)
	if !found {
		return "", nil, false
	}
	sibs := hierarchy.Siblings(tasks, effectiveParent(tasks, t))
	idx := siblingIndex(sibs, id)
	if idx <= 0 {
		return "", nil, false
	}
	newParent := sibs[idx-1]
	orderedIDs = append(siblingIDs(hierarchy.Siblings(tasks, newParent.ID)), id)
	return newParent.ID, orderedIDs, true
}

// planOutdent moves the task to its grandparent's level, placed directly
// after its current parent.
func planOutdent(tasks []model.Task, id string) (parentID string, orderedIDs []string, ok bool) {
	t, found := findTask(tasks, id)
	if !found {
		return "", nil, false
	}
	curParent := effectiveParent(tasks, t)
	if curParent == "" {
		return "", nil, false
	}
	parent, _ := findTask(tasks, curParent)
	parentID = effectiveParent(tasks, parent)
	sibs := hierarchy.Siblings(tasks, parentID)
	at := siblingIndex(sibs, parent.ID)
	for i, s := range sibs {
		orderedIDs = append(orderedIDs, s.ID)
		if i == at {
			orderedIDs = append(orderedIDs, id)
		}
	}
	return parentID, orderedIDs, true
}

func findTask(tasks []model.Task, id string) (model.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func siblingIndex(sibs []model.Task, id string) int {
	for i, s := range sibs {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func siblingIDs(sibs []model.Task) []string {
	ids := make([]string, len(sibs))
	for i, s := range sibs {
		ids[i] = s.ID
	}
	return ids
}

// ---------------------------------------------------------------------------
// Key handlers
// ---------------------------------------------------------------------------

func (m Model) moveRow(dir int) (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	parentID, ordered, ok := planMove(m.tasks, row.Task.ID, dir)
	if !ok {
		return m, nil
	}
	m.cursor += dir
	return m.withStatus("Moved " + row.Task.Name),
		moveTaskCmd(m.ctx, m.repos, row.Task.ID, parentID, ordered)
}

func (m Model) indentRow() (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	parentID, ordered, ok := planIndent(m.tasks, row.Task.ID)
	if !ok {
		return m.withStatus("No row above to indent under"), nil
	}
	return m.withStatus("Indented " + row.Task.Name),
		moveTaskCmd(m.ctx, m.repos, row.Task.ID, parentID, ordered)
}

func (m Model) outdentRow() (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	parentID, ordered, ok := planOutdent(m.tasks, row.Task.ID)
	if !ok {
		return m.withStatus("Already at top level"), nil
	}
	return m.withStatus("Outdented " + row.Task.Name),
		moveTaskCmd(m.ctx, m.repos, row.Task.ID, parentID, ordered)
}
