// Package tui is the interactive grid/timeline editor. It owns no derived
// state: every render pass reads the task snapshot through the hierarchy,
// calendar and colors packages, the same functions the exporters use.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ganttly/internal/config"
	"github.com/jask/ganttly/internal/holidays"
	"github.com/jask/ganttly/internal/model"
	"github.com/jask/ganttly/internal/store"
)

const appName = "Ganttly"

// Tab indices
const (
	tabGrid = iota
	tabTimeline
	tabSettings
	tabCount
)

// Repos collects the persistence handles the app needs.
type Repos struct {
	Tasks    *store.TaskRepo
	Settings *store.SettingsRepo
}

type editField int

const (
	fieldName editField = iota
	fieldStart
	fieldEnd
	fieldDuration
)

type editState struct {
	active bool
	taskID string
	field  editField
	input  textinput.Model
}

type findState struct {
	active bool
	input  textinput.Model
}

// Model is the bubbletea model for the whole editor.
type Model struct {
	ctx      context.Context
	repos    Repos
	cfg      config.Config
	holidays *holidays.Source

	tasks     []model.Task
	settings  store.Settings
	collapsed map[string]bool

	activeTab      int
	cursor         int
	topIndex       int
	settingsCursor int
	width          int
	height         int
	status         string
	statusIsError  bool
	ready          bool

	edit editState
	find findState
	keys keyMap
}

// New builds the app model. Nothing is loaded until Init runs.
func New(ctx context.Context, repos Repos, cfg config.Config) Model {
	return Model{
		ctx:       ctx,
		repos:     repos,
		cfg:       cfg,
		holidays:  holidays.New(),
		collapsed: map[string]bool{},
		keys:      newKeyMap(),
	}
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type snapshotLoadedMsg struct {
	tasks    []model.Task
	settings store.Settings
	err      error
}

type taskSavedMsg struct {
	err error
}

type settingsSavedMsg struct {
	err error
}

type exportDoneMsg struct {
	svgPath string
	csvPath string
	err     error
}

// ---------------------------------------------------------------------------
// Bubble Tea interface: Init / Update / View
// ---------------------------------------------------------------------------

func (m Model) Init() tea.Cmd {
	return loadSnapshotCmd(m.ctx, m.repos)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotLoadedMsg:
		return m.handleSnapshotLoaded(msg)
	case taskSavedMsg:
		if msg.err != nil {
			return m.withError("Save failed: " + msg.err.Error()), nil
		}
		return m, loadSnapshotCmd(m.ctx, m.repos)
	case settingsSavedMsg:
		if msg.err != nil {
			return m.withError("Settings save failed: " + msg.err.Error()), nil
		}
		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			return m.withError("Export failed: " + msg.err.Error()), nil
		}
		return m.withStatus("Exported " + msg.svgPath + " and " + msg.csvPath), nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInWindow()
		return m, nil
	case tea.KeyMsg:
		if m.edit.active {
			return m.updateEdit(msg)
		}
		if m.find.active {
			return m.updateFind(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

func (m Model) handleSnapshotLoaded(msg snapshotLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.withError("Load failed: " + msg.err.Error()), nil
	}
	m.tasks = msg.tasks
	m.settings = msg.settings
	m.ready = true
	m.ensureCursorInWindow()
	if m.status == "" {
		m.status = "Ready. tab switches views, enter edits, / finds."
	}
	return m, nil
}

func (m Model) withStatus(s string) Model {
	m.status = s
	m.statusIsError = false
	return m
}

func (m Model) withError(s string) Model {
	m.status = s
	m.statusIsError = true
	return m
}

// workingConfig is the active calendar policy from persisted settings.
func (m Model) workingConfig() model.WorkingDaysConfig {
	return m.settings.Calendar
}
