package tui

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ganttly/internal/export"
	"github.com/jask/ganttly/internal/model"
	"github.com/jask/ganttly/internal/store"
)

func loadSnapshotCmd(ctx context.Context, repos Repos) tea.Cmd {
	return func() tea.Msg {
		tasks, err := repos.Tasks.List(ctx)
		if err != nil {
			return snapshotLoadedMsg{err: err}
		}
		settings, err := repos.Settings.Load(ctx)
		if err != nil {
			return snapshotLoadedMsg{err: err}
		}
		return snapshotLoadedMsg{tasks: tasks, settings: settings}
	}
}

func saveTaskCmd(ctx context.Context, repos Repos, t model.Task) tea.Cmd {
	return func() tea.Msg {
		return taskSavedMsg{err: repos.Tasks.Upsert(ctx, t)}
	}
}

func createTaskCmd(ctx context.Context, repos Repos, parentID string) tea.Cmd {
	return func() tea.Msg {
		order, err := repos.Tasks.NextOrder(ctx, parentID)
		if err != nil {
			return taskSavedMsg{err: err}
		}
		_, err = repos.Tasks.Create(ctx, model.Task{
			Name:     "New task",
			ParentID: parentID,
			Order:    order,
			Color:    "#89b4fa",
		})
		return taskSavedMsg{err: err}
	}
}

// moveTaskCmd reparents id and rewrites its new sibling group's sort keys to
// the given sequence. taskSavedMsg triggers a snapshot reload either way.
func moveTaskCmd(ctx context.Context, repos Repos, id, parentID string, orderedIDs []string) tea.Cmd {
	return func() tea.Msg {
		if err := repos.Tasks.SetParent(ctx, id, parentID, 0); err != nil {
			return taskSavedMsg{err: err}
		}
		for i, sid := range orderedIDs {
			if err := repos.Tasks.Reorder(ctx, sid, i); err != nil {
				return taskSavedMsg{err: err}
			}
		}
		return taskSavedMsg{}
	}
}

func deleteTaskCmd(ctx context.Context, repos Repos, id string) tea.Cmd {
	return func() tea.Msg {
		return taskSavedMsg{err: repos.Tasks.Delete(ctx, id)}
	}
}

func saveSettingsCmd(ctx context.Context, repos Repos, s store.Settings) tea.Cmd {
	return func() tea.Msg {
		return settingsSavedMsg{err: repos.Settings.Save(ctx, s)}
	}
}

// exportCmd writes the SVG and CSV exports into the working directory,
// using the exact snapshot the views are rendering.
func exportCmd(tasks []model.Task, collapsed map[string]bool, state model.ColorModeState) tea.Cmd {
	return func() tea.Msg {
		cwd, err := os.Getwd()
		if err != nil {
			return exportDoneMsg{err: err}
		}
		svgPath := filepath.Join(cwd, "ganttly-export.svg")
		csvPath := filepath.Join(cwd, "ganttly-export.csv")

		svgFile, err := os.Create(svgPath)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer svgFile.Close()
		if err := export.WriteSVG(svgFile, tasks, collapsed, state); err != nil {
			return exportDoneMsg{err: err}
		}

		csvFile, err := os.Create(csvPath)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer csvFile.Close()
		if err := export.WriteCSV(csvFile, tasks, collapsed, state); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{svgPath: svgPath, csvPath: csvPath}
	}
}
