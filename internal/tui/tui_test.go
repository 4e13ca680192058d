package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jask/ganttly/internal/config"
	"github.com/jask/ganttly/internal/hierarchy"
	"github.com/jask/ganttly/internal/model"
	"github.com/jask/ganttly/internal/store"
)

func testModel(tasks []model.Task) Model {
	m := New(context.Background(), Repos{}, config.Config{})
	m.tasks = tasks
	m.ready = true
	m.settings = store.Settings{
		Colors:   model.ColorModeState{Mode: model.ModeManual},
		Calendar: model.WorkingDaysConfig{ExcludeSaturday: true, ExcludeSunday: true},
	}
	return m
}

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "proj", Type: model.TypeSummary, Name: "Project", Order: 0, Color: "#cba6f7"},
		{ID: "a", Type: model.TypeTask, Name: "Backend work", ParentID: "proj", Order: 0,
			StartDate: "2026-09-07", EndDate: "2026-09-11", Color: "#89b4fa"},
		{ID: "b", Type: model.TypeTask, Name: "Frontend work", ParentID: "proj", Order: 1,
			StartDate: "2026-09-14", EndDate: "2026-09-18", Color: "#a6e3a1"},
	}
}

func TestBestMatchRanking(t *testing.T) {
	rows := hierarchy.Flatten(sampleTasks(), nil)

	if idx := bestMatch(rows, "frontend work"); idx != 2 {
		t.Fatalf("exact match idx = %d, want 2", idx)
	}
	if idx := bestMatch(rows, "backend"); idx != 1 {
		t.Fatalf("prefix match idx = %d, want 1", idx)
	}
	// one-letter typo still lands on the right row
	if idx := bestMatch(rows, "frontend wark"); idx != 2 {
		t.Fatalf("fuzzy match idx = %d, want 2", idx)
	}
	if idx := bestMatch(rows, "zzzzzzzzzzzz"); idx != -1 {
		t.Fatalf("nonsense query idx = %d, want -1", idx)
	}
}

func TestCycleWraps(t *testing.T) {
	opts := []string{"a", "b", "c"}
	if got := cycle(opts, "c", 1); got != "a" {
		t.Fatalf("forward wrap = %s, want a", got)
	}
	if got := cycle(opts, "a", -1); got != "c" {
		t.Fatalf("backward wrap = %s, want c", got)
	}
	if got := cycle(opts, "missing", 1); got != "a" {
		t.Fatalf("unknown value = %s, want first option", got)
	}
}

func TestGridCellsSummaryDerived(t *testing.T) {
	m := testModel(sampleTasks())
	start, end, dur := m.gridCells(m.tasks[0])
	if start != "2026-09-07" || end != "2026-09-18" || dur != "12" {
		t.Fatalf("summary cells = %s/%s/%s", start, end, dur)
	}
}

func TestGridCellsBlankWithoutDates(t *testing.T) {
	m := testModel([]model.Task{
		{ID: "s", Type: model.TypeSummary, Name: "Empty"},
		{ID: "t", Type: model.TypeTask, Name: "Undated", ParentID: "s"},
	})
	if start, end, dur := m.gridCells(m.tasks[0]); start != "" || end != "" || dur != "" {
		t.Fatalf("undated summary must render blank, got %s/%s/%s", start, end, dur)
	}
	if start, end, dur := m.gridCells(m.tasks[1]); start != "" || end != "" || dur != "" {
		t.Fatalf("undated leaf must render blank, got %s/%s/%s", start, end, dur)
	}
}

func TestDisplayDurationUsesPolicy(t *testing.T) {
	m := testModel(sampleTasks())
	// Mon..Fri with weekends excluded: 5 working days.
	if d := m.displayDuration(m.tasks[1]); d != 5 {
		t.Fatalf("duration = %d, want 5", d)
	}
	m.settings.Calendar = model.WorkingDaysConfig{}
	if d := m.displayDuration(m.tasks[1]); d != 5 {
		t.Fatalf("calendar-day duration = %d, want 5", d)
	}
}

func TestCommitEditRejectsInvalidDate(t *testing.T) {
	m := testModel(sampleTasks())
	input := textinput.New()
	input.SetValue("14/09/2026")
	m.edit = editState{active: true, taskID: "a", field: fieldStart, input: input}

	next, cmd := m.commitEdit()
	got := next.(Model)
	if cmd != nil {
		t.Fatalf("invalid date must not trigger a save")
	}
	if !got.statusIsError || !strings.Contains(got.status, "Invalid date") {
		t.Fatalf("expected inline validation, got %q", got.status)
	}
	if !got.edit.active {
		t.Fatalf("edit should stay open for correction")
	}
}

func TestCommitEditDurationNeedsStart(t *testing.T) {
	tasks := sampleTasks()
	tasks[1].StartDate = ""
	tasks[1].EndDate = ""
	m := testModel(tasks)
	input := textinput.New()
	input.SetValue("5")
	m.edit = editState{active: true, taskID: "a", field: fieldDuration, input: input}

	next, cmd := m.commitEdit()
	got := next.(Model)
	if cmd != nil || !got.statusIsError {
		t.Fatalf("duration edit without a start date must fail inline, got %q", got.status)
	}
}

func TestViewRendersAllTabs(t *testing.T) {
	m := testModel(sampleTasks())
	m.width = 100
	m.height = 30
	for tab := 0; tab < tabCount; tab++ {
		m.activeTab = tab
		out := m.View()
		if out == "" {
			t.Fatalf("tab %d rendered empty", tab)
		}
	}
	m.activeTab = tabGrid
	if !strings.Contains(m.View(), "Backend work") {
		t.Fatalf("grid must list task names")
	}
}

func TestPlanMoveSwapsSiblings(t *testing.T) {
	tasks := sampleTasks()
	parentID, ordered, ok := planMove(tasks, "b", -1)
	if !ok || parentID != "proj" {
		t.Fatalf("move up rejected: parent=%q ok=%v", parentID, ok)
	}
	if len(ordered) != 2 || ordered[0] != "b" || ordered[1] != "a" {
		t.Fatalf("sibling sequence = %v, want [b a]", ordered)
	}
	if _, _, ok := planMove(tasks, "a", -1); ok {
		t.Fatalf("topmost sibling must not move up")
	}
	if _, _, ok := planMove(tasks, "b", 1); ok {
		t.Fatalf("bottom sibling must not move down")
	}
}

func TestPlanIndentUsesPreviousSibling(t *testing.T) {
	tasks := sampleTasks()
	parentID, ordered, ok := planIndent(tasks, "b")
	if !ok || parentID != "a" {
		t.Fatalf("indent target = %q ok=%v, want previous sibling a", parentID, ok)
	}
	if len(ordered) != 1 || ordered[0] != "b" {
		t.Fatalf("new child sequence = %v, want [b]", ordered)
	}
	if _, _, ok := planIndent(tasks, "a"); ok {
		t.Fatalf("first sibling has nothing to indent under")
	}
	if _, _, ok := planIndent(tasks, "proj"); ok {
		t.Fatalf("sole root has nothing to indent under")
	}
}

func TestPlanOutdentPlacesAfterParent(t *testing.T) {
	tasks := sampleTasks()
	parentID, ordered, ok := planOutdent(tasks, "a")
	if !ok || parentID != "" {
		t.Fatalf("outdent target = %q ok=%v, want root", parentID, ok)
	}
	if len(ordered) != 2 || ordered[0] != "proj" || ordered[1] != "a" {
		t.Fatalf("root sequence = %v, want [proj a]", ordered)
	}
	if _, _, ok := planOutdent(tasks, "proj"); ok {
		t.Fatalf("root rows cannot outdent")
	}
}

func TestMoveKeysEmitCommands(t *testing.T) {
	m := testModel(sampleTasks())
	m.cursor = 2 // "b"

	next, cmd := m.moveRow(-1)
	got := next.(Model)
	if cmd == nil {
		t.Fatalf("valid move must emit a save command")
	}
	if got.cursor != 1 {
		t.Fatalf("cursor should follow the moved row, got %d", got.cursor)
	}

	m.cursor = 0 // "proj", sole root
	if _, cmd := m.moveRow(-1); cmd != nil {
		t.Fatalf("impossible move must be a no-op")
	}
	if _, cmd := m.outdentRow(); cmd != nil {
		t.Fatalf("root outdent must be a no-op")
	}
}

func TestPaletteOnlyCyclesInThemeMode(t *testing.T) {
	m := testModel(sampleTasks())
	m.settings.Colors.Mode = model.ModeManual
	m.settings.Colors.Theme.SelectedPaletteID = "mocha"
	m.settingsCursor = settingPalette

	next, cmd := m.cycleSetting(1)
	got := next.(Model)
	if cmd != nil {
		t.Fatalf("palette cycling outside theme mode must not save")
	}
	if got.settings.Colors.Theme.SelectedPaletteID != "mocha" {
		t.Fatalf("palette changed outside theme mode: %q", got.settings.Colors.Theme.SelectedPaletteID)
	}

	got.settings.Colors.Mode = model.ModeTheme
	next, cmd = got.cycleSetting(1)
	got = next.(Model)
	if cmd == nil || got.settings.Colors.Theme.SelectedPaletteID == "mocha" {
		t.Fatalf("palette must cycle in theme mode, got %q", got.settings.Colors.Theme.SelectedPaletteID)
	}
}

func TestTimelineAxisUsesConfiguredFormat(t *testing.T) {
	m := testModel(sampleTasks())
	m.width = 100
	m.height = 30
	m.cfg.UI.DateFormat = "02/01"

	out := m.timelineView()
	if !strings.Contains(out, "07/09") || !strings.Contains(out, "18/09") {
		t.Fatalf("axis should use the configured date format:\n%s", out)
	}

	m.cfg.UI.DateFormat = ""
	out = m.timelineView()
	if !strings.Contains(out, "2026-09-07") {
		t.Fatalf("unset format should fall back to stored dates:\n%s", out)
	}
}
